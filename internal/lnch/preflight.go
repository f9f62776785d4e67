//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"fmt"

	"github.com/akranes/rentaltopics/internal/str"
)

// ConfigurationError - an invalid parameter combination; fatal before any work starts
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (c *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", c.Setting, c.Reason)
}

// ValidatePipelineConfig - reject a broken parameter set before loading a single row
func ValidatePipelineConfig(c *str.CurrentConfiguration) error {
	if c.VocabCap <= 0 {
		return &ConfigurationError{Setting: "vocabcap", Reason: "must be greater than zero"}
	}
	if c.KLow < 2 {
		return &ConfigurationError{Setting: "klow", Reason: "fewer than two topics is not a model"}
	}
	if c.KHigh < c.KLow {
		return &ConfigurationError{Setting: "khigh", Reason: "topic-count range is empty"}
	}
	if c.LdaIterations <= 0 {
		return &ConfigurationError{Setting: "iterations", Reason: "must be greater than zero"}
	}
	if c.WorkerCount < 1 {
		return &ConfigurationError{Setting: "workercount", Reason: "need at least one worker"}
	}
	if c.ChosenK != 0 && (c.ChosenK < c.KLow || c.ChosenK > c.KHigh) {
		return &ConfigurationError{Setting: "chosenk", Reason: "chosen topic count falls outside the search range"}
	}
	if c.Category == "" {
		return &ConfigurationError{Setting: "category", Reason: "an empty category substring matches every row"}
	}
	return nil
}
