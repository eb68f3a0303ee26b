package commands

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

const (
	postCommandValidationCode  = "POST_COMMAND_VALIDATION_FAILED"
	postCommandContextCanceled = "POST_COMMAND_CANCELED"
	postCommandContextTimeout  = "POST_COMMAND_TIMEOUT"
	postCommandContextError    = "POST_COMMAND_CONTEXT_ERROR"
	postCommandExecuteFailed   = "POST_COMMAND_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "post command rejected by validation").
		WithTextCode(postCommandValidationCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "post command cancelled").
			WithTextCode(postCommandContextCanceled)
	case context.DeadlineExceeded:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "post command deadline exceeded").
			WithTextCode(postCommandContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "post command context error").
			WithTextCode(postCommandContextError)
	}
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "post command failed").
		WithTextCode(postCommandExecuteFailed)
}
