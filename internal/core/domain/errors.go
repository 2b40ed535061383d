package domain

import "errors"

var (
	// ErrUnknownVersion is returned when a rule-set version is not registered.
	ErrUnknownVersion = errors.New("unknown rule set version")

	// ErrInvalidRuleSet is returned when a rule set fails validation.
	ErrInvalidRuleSet = errors.New("invalid rule set")

	// ErrDuplicateVersion is returned when registering a rule-set version that
	// already exists. The registry is append-only; versions are never edited.
	ErrDuplicateVersion = errors.New("rule set version already registered")

	// ErrUnknownFamily is returned when a rule set has no entry for a family.
	ErrUnknownFamily = errors.New("unknown feature family")

	// ErrNoConfigurations is returned when analysis is requested for an empty
	// configuration set.
	ErrNoConfigurations = errors.New("no configurations to analyze")

	// ErrDuplicateConfiguration is returned when two configurations in one
	// analysis share a name.
	ErrDuplicateConfiguration = errors.New("duplicate configuration name")

	// ErrMalformedStep is returned when a step's parameters cannot be
	// canonicalized. It aborts the affected analysis; no partial plans.
	ErrMalformedStep = errors.New("step parameters cannot be canonicalized")

	// ErrUnknownStepName is returned when a configuration declares a step
	// outside the step vocabulary.
	ErrUnknownStepName = errors.New("unknown preprocessing step")

	// ErrUnknownConfiguration is returned when a plan references a
	// configuration the executor was not given.
	ErrUnknownConfiguration = errors.New("configuration not found")

	// ErrResultNotFound is returned when a stored result is requested for a
	// (configuration, family) pair that was never put.
	ErrResultNotFound = errors.New("result not found")

	// ErrComputeFailed is returned when the external feature computation for
	// a producer fails.
	ErrComputeFailed = errors.New("feature computation failed")

	// ErrConfigReadFailed is returned when the run file cannot be read.
	ErrConfigReadFailed = errors.New("failed to read run file")

	// ErrConfigParseFailed is returned when the run file cannot be parsed.
	ErrConfigParseFailed = errors.New("failed to parse run file")

	// ErrConfigWriteFailed is returned when the run file cannot be written.
	ErrConfigWriteFailed = errors.New("failed to write run file")

	// ErrStoreReadFailed is returned when the result store cannot be read.
	ErrStoreReadFailed = errors.New("failed to read result store")

	// ErrStoreWriteFailed is returned when the result store cannot be written.
	ErrStoreWriteFailed = errors.New("failed to write result store")

	// ErrStoreMarshalFailed is returned when results cannot be marshaled.
	ErrStoreMarshalFailed = errors.New("failed to marshal result store")

	// ErrStoreUnmarshalFailed is returned when results cannot be unmarshaled.
	ErrStoreUnmarshalFailed = errors.New("failed to unmarshal result store")
)
