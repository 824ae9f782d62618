package config

import "strings"

// NormalizeConfig case-folds enumerations and tag names in place. It returns
// a warning for every value whose spelling changed and fails on values that
// name no known option.
func NormalizeConfig(cfg *Config) ([]string, error) {
	var warnings []string

	enc, w, err := encodingNormalizer.Canonicalize(string(cfg.Input.Encoding))
	if err != nil {
		return nil, err
	}
	cfg.Input.Encoding, warnings = enc, appendWarning(warnings, w)

	level, w, err := logLevelNormalizer.Canonicalize(string(cfg.Logging.Level))
	if err != nil {
		return nil, err
	}
	cfg.Logging.Level, warnings = level, appendWarning(warnings, w)

	format, w, err := logFormatNormalizer.Canonicalize(string(cfg.Logging.Format))
	if err != nil {
		return nil, err
	}
	cfg.Logging.Format, warnings = format, appendWarning(warnings, w)

	out, w, err := outputFormatNormalizer.Canonicalize(string(cfg.Output.Format))
	if err != nil {
		return nil, err
	}
	cfg.Output.Format, warnings = out, appendWarning(warnings, w)

	for i, tag := range cfg.Parser.ExtraTags {
		cleaned := strings.ToLower(strings.TrimSpace(tag))
		if cleaned != tag {
			warnings = append(warnings, "normalized parser.extra_tags entry '"+tag+"' to '"+cleaned+"'")
			cfg.Parser.ExtraTags[i] = cleaned
		}
	}

	return warnings, nil
}

func appendWarning(warnings []string, w string) []string {
	if w == "" {
		return warnings
	}
	return append(warnings, w)
}
