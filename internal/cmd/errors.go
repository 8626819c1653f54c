package cmd

import (
	"errors"
	"strings"

	"github.com/salmonumbrella/datemath-cli/internal/datemath"
	cerrors "github.com/salmonumbrella/datemath-cli/internal/errors"
)

// mapCommandError adds common suggestions for known error types.
func mapCommandError(err error) error {
	if err == nil {
		return nil
	}
	if cerrors.ContainsSuggestion(err) {
		return err
	}

	if errors.Is(err, datemath.ErrInvalidExpression) {
		if strings.Contains(err.Error(), "unknown unit") {
			return cerrors.WithSuggestion(err, cerrors.SuggestionListUnits)
		}
		if strings.Contains(err.Error(), "cannot round") {
			return cerrors.WithSuggestion(err, cerrors.SuggestionRoundCount)
		}
		return cerrors.WithSuggestion(err, cerrors.SuggestionSyntax)
	}

	return err
}
