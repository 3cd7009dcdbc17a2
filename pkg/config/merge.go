package config

// mergeLLMProviders merges built-in and user-defined LLM provider configurations.
// User-defined providers override built-in providers with the same name.
func mergeLLMProviders(builtinProviders map[string]LLMProviderConfig, userProviders map[string]LLMProviderConfig) map[string]*LLMProviderConfig {
	result := make(map[string]*LLMProviderConfig)

	for name, provider := range builtinProviders {
		providerCopy := provider
		result[name] = &providerCopy
	}

	// User-defined providers override (or add new ones)
	for name, userProvider := range userProviders {
		providerCopy := userProvider
		result[name] = &providerCopy
	}

	return result
}

// mergeQueryTargets merges built-in and user-defined query target configurations.
// User-defined targets override built-in targets with the same name.
func mergeQueryTargets(builtinTargets map[string]QueryTargetConfig, userTargets map[string]QueryTargetConfig) map[string]*QueryTargetConfig {
	result := make(map[string]*QueryTargetConfig)

	for name, target := range builtinTargets {
		targetCopy := target
		result[name] = &targetCopy
	}

	// User-defined targets override (or add new ones)
	for name, userTarget := range userTargets {
		targetCopy := userTarget
		result[name] = &targetCopy
	}

	return result
}
