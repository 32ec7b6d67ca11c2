// Package x402 builds facilitator configuration for the x402 payment
// protocol: per-endpoint authentication header factories for the platform's
// verify and settle operations.
package x402

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/axent-pl/apiauth/client"
	"github.com/axent-pl/apiauth/common"
	"github.com/axent-pl/apiauth/headers"
)

const (
	// FacilitatorBaseURL is the platform host serving the facilitator API.
	FacilitatorBaseURL = "https://api.cdp.coinbase.com"

	// FacilitatorV2Route is the facilitator route prefix under the base URL.
	FacilitatorV2Route = "/platform/v2/x402"

	// Version is reported as the source version in correlation data.
	Version = "0.4.0"

	source = "x402"
)

// EndpointHeaders carries one freshly minted header set per facilitator
// endpoint. Each invocation of the factory produces new tokens; header sets
// are never reused across calls.
type EndpointHeaders struct {
	Verify map[string]string
	Settle map[string]string
}

// HeadersFunc mints authentication headers for the facilitator endpoints.
type HeadersFunc func() (EndpointHeaders, error)

// FacilitatorConfig points a payment integration at the platform
// facilitator.
type FacilitatorConfig struct {
	// URL is the facilitator base endpoint.
	URL string

	// CreateHeaders returns fresh authentication headers for the verify and
	// settle calls.
	CreateHeaders HeadersFunc
}

// NewFacilitatorConfig builds the facilitator config for the platform. The
// credentials may be empty, in which case each CreateHeaders call falls back
// to the CDP_API_KEY_ID and CDP_API_KEY_SECRET environment variables.
func NewFacilitatorConfig(apiKeyID, apiKeySecret string) FacilitatorConfig {
	return FacilitatorConfig{
		URL:           FacilitatorBaseURL + FacilitatorV2Route,
		CreateHeaders: CreateAuthHeaders(apiKeyID, apiKeySecret),
	}
}

// CreateAuthHeaders returns a factory minting authentication headers for the
// facilitator's verify and settle endpoints. Credentials are resolved on
// every invocation, explicit values first, environment second, so rotated
// environment credentials take effect without rebuilding the config.
func CreateAuthHeaders(apiKeyID, apiKeySecret string) HeadersFunc {
	host := strings.TrimPrefix(FacilitatorBaseURL, "https://")

	return func() (EndpointHeaders, error) {
		keyID, keySecret := apiKeyID, apiKeySecret
		if keyID == "" || keySecret == "" {
			env := client.ConfigFromEnv()
			if keyID == "" {
				keyID = env.APIKeyID
			}
			if keySecret == "" {
				keySecret = env.APIKeySecret
			}
		}
		if keyID == "" || keySecret == "" {
			return EndpointHeaders{}, fmt.Errorf(
				"missing API credentials: set %s and %s or pass them explicitly: %w",
				client.EnvAPIKeyID, client.EnvAPIKeySecret, common.ErrInvalidInput)
		}

		endpointHeaders := func(path string) (map[string]string, error) {
			return headers.GetAuthHeaders(headers.Options{
				APIKeyID:      keyID,
				APIKeySecret:  keySecret,
				RequestMethod: http.MethodPost,
				RequestHost:   host,
				RequestPath:   FacilitatorV2Route + path,
				Source:        source,
				SourceVersion: Version,
			})
		}

		verify, err := endpointHeaders("/verify")
		if err != nil {
			return EndpointHeaders{}, err
		}
		settle, err := endpointHeaders("/settle")
		if err != nil {
			return EndpointHeaders{}, err
		}
		return EndpointHeaders{Verify: verify, Settle: settle}, nil
	}
}
