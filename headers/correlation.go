package headers

import "strings"

// SDKVersion is the library version reported in correlation data.
const SDKVersion = "0.1.0"

const (
	sdkLanguage   = "go"
	defaultSource = "sdk-auth"
)

// EncodeCorrelation serializes SDK identity metadata into the opaque value
// carried by the Correlation-Context header. Pure and deterministic; the
// assemblers skip it entirely when neither field is set.
func EncodeCorrelation(source, sourceVersion string) string {
	if source == "" {
		source = defaultSource
	}
	pairs := []string{
		"sdk_version=" + SDKVersion,
		"sdk_language=" + sdkLanguage,
		"source=" + source,
	}
	if sourceVersion != "" {
		pairs = append(pairs, "source_version="+sourceVersion)
	}
	return strings.Join(pairs, ",")
}
