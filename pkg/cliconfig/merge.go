package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied, unless the key is listed in
// source.SetFields.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	mergeString(target, &target.URL, source.URL, "url", sourceType)
	mergeString(target, &target.ServiceVersion, source.ServiceVersion, "serviceVersion", sourceType)
	mergeString(target, &target.AuthURL, source.AuthURL, "authUrl", sourceType)
	mergeString(target, &target.Token, source.Token, "token", sourceType)
	mergeString(target, &target.User, source.User, "user", sourceType)
	mergeString(target, &target.LogLevel, source.LogLevel, "logLevel", sourceType)
	mergeString(target, &target.LogFormat, source.LogFormat, "logFormat", sourceType)

	if source.Timeout != 0 || isSet(source, "timeout") {
		target.Timeout = source.Timeout
		target.Sources["timeout"] = sourceType
	}
	if boolIsSet(source, "insecure", source.Insecure) {
		target.Insecure = source.Insecure
		target.Sources["insecure"] = sourceType
	}
	if boolIsSet(source, "trustAllCerts", source.TrustAllCerts) {
		target.TrustAllCerts = source.TrustAllCerts
		target.Sources["trustAllCerts"] = sourceType
	}
	if boolIsSet(source, "streaming", source.Streaming) {
		target.Streaming = source.Streaming
		target.Sources["streaming"] = sourceType
	}
	if boolIsSet(source, "json", source.JSON) {
		target.JSON = source.JSON
		target.Sources["json"] = sourceType
	}
}

func mergeString(target *CLIConfig, dst *string, value, key, sourceType string) {
	if value == "" {
		return
	}
	*dst = value
	target.Sources[key] = sourceType
}

func isSet(cfg *CLIConfig, key string) bool {
	return cfg.SetFields != nil && cfg.SetFields[key]
}

// boolIsSet reports whether a boolean field was explicitly set in the source.
// Without SetFields (programmatic configs) only true counts as set.
func boolIsSet(cfg *CLIConfig, key string, value bool) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields[key]
	}
	return value
}
