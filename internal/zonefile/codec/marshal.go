package codec

import (
	encjson "encoding/json"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"

	"github.com/taich001/DNSzonefileManager/internal/zonefile/domain"
)

// Supported serialization formats for the exchange representation.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// parserFor maps a format name to its wire parser. Format names are
// case-insensitive; "yml" is accepted as an alias.
func parserFor(format string) (koanf.Parser, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return json.Parser(), nil
	case FormatYAML, "yml":
		return yaml.Parser(), nil
	case FormatTOML:
		return toml.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported serialization format %q", format)
	}
}

// Marshal serializes a zone's exchange form in the given format.
func Marshal(z *domain.Zone, format string) ([]byte, error) {
	p, err := parserFor(format)
	if err != nil {
		return nil, err
	}
	out, err := p.Marshal(ToExchange(z))
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", format, err)
	}
	return out, nil
}

// MarshalIndent serializes a zone as indented JSON for human inspection.
// Other formats are already line-oriented and come back unchanged.
func MarshalIndent(z *domain.Zone, format string) ([]byte, error) {
	if strings.ToLower(format) != FormatJSON {
		return Marshal(z, format)
	}
	out, err := encjson.MarshalIndent(ToExchange(z), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return append(out, '\n'), nil
}

// Unmarshal deserializes exchange-format bytes back into a zone. Decode
// failures come back as the parser's error; structural problems in the
// decoded map come back as *domain.SchemaError.
func Unmarshal(data []byte, format string) (*domain.Zone, error) {
	p, err := parserFor(format)
	if err != nil {
		return nil, err
	}
	m, err := p.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", format, err)
	}
	return FromExchange(m)
}
