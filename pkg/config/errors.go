package config

import "errors"

var (
	// ErrLLMProviderNotFound is returned when a provider name is not registered.
	ErrLLMProviderNotFound = errors.New("LLM provider not found")

	// ErrModelNotPriced is returned when no pricing entry exists for a model.
	ErrModelNotPriced = errors.New("no pricing configured for model")
)
