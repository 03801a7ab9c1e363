package cli

import (
	"context"
	"fmt"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/ports"
)

// Terminal drives one checkout session from a PromptDriver.
type Terminal struct {
	createSession commands.CreateSessionCommandHandler
	setField      commands.SetFieldCommandHandler
	submit        commands.SubmitCheckoutCommandHandler
	getSession    queries.GetSessionQueryHandler
	driver        PromptDriver
}

func NewTerminal(
	createSession commands.CreateSessionCommandHandler,
	setField commands.SetFieldCommandHandler,
	submit commands.SubmitCheckoutCommandHandler,
	getSession queries.GetSessionQueryHandler,
	driver PromptDriver,
) *Terminal {
	return &Terminal{
		createSession: createSession,
		setField:      setField,
		submit:        submit,
		getSession:    getSession,
		driver:        driver,
	}
}

// Run opens a session and loops until the order is placed. It returns the
// path the buyer was sent to, or ErrAborted when the buyer gives up.
func (t *Terminal) Run(ctx context.Context) (string, error) {
	sessionID := kernel.NewUUID()
	createCmd, err := commands.NewCreateSessionCommand(sessionID)
	if err != nil {
		return "", err
	}
	if err = t.createSession.Handle(ctx, createCmd); err != nil {
		return "", err
	}

	pending := checkout.Fields()
	for {
		if err = t.promptFields(ctx, sessionID, pending); err != nil {
			return "", err
		}

		place, err := t.driver.Confirm(ctx, ConfirmConfig{Message: "Place order?", Default: true})
		if err != nil {
			return "", err
		}
		if !place {
			pending = checkout.Fields()
			continue
		}

		redirect, errorMap, err := t.submitOnce(ctx, sessionID)
		if err != nil {
			return "", err
		}
		if errorMap.IsEmpty() {
			return redirect, nil
		}

		if err = t.driver.Info(ctx, fmt.Sprintf("%d field(s) need attention.", len(errorMap))); err != nil {
			return "", err
		}
		pending = errorMap.Fields()
	}
}

func (t *Terminal) promptFields(ctx context.Context, sessionID kernel.UUID, fields []checkout.Field) error {
	query, err := queries.NewGetSessionQuery(sessionID)
	if err != nil {
		return err
	}
	session, err := t.getSession.Handle(ctx, query)
	if err != nil {
		return err
	}

	views := make(map[checkout.Field]checkout.FieldView, len(session.Fields))
	for _, view := range session.Fields {
		views[view.Field] = view
	}

	for _, field := range fields {
		view := views[field]
		if view.HasError {
			if err = t.driver.Info(ctx, "  "+view.Error); err != nil {
				return err
			}
		}

		value, err := t.prompt(ctx, view)
		if err != nil {
			return err
		}

		cmd, err := commands.NewSetFieldCommand(sessionID, field, value)
		if err != nil {
			return err
		}
		if err = t.setField.Handle(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (t *Terminal) prompt(ctx context.Context, view checkout.FieldView) (string, error) {
	cfg := InputConfig{
		Message: view.Label,
		Default: view.Value,
	}
	if view.MaxLength > 0 {
		cfg.Help = fmt.Sprintf("%d characters", view.MaxLength)
	}

	switch view.InputType {
	case checkout.InputPassword:
		return t.driver.Password(ctx, cfg)
	case checkout.InputTextArea:
		return t.driver.TextArea(ctx, cfg)
	default:
		return t.driver.Input(ctx, cfg)
	}
}

func (t *Terminal) submitOnce(ctx context.Context, sessionID kernel.UUID) (string, checkout.ErrorMap, error) {
	var redirect string
	var infoErr error
	confirmer := ports.ConfirmerFunc(func() {
		infoErr = t.driver.Info(ctx, checkout.OrderPlacedMessage)
	})
	navigator := ports.NavigatorFunc(func(path string) {
		redirect = path
	})

	cmd, err := commands.NewSubmitCheckoutCommand(sessionID, confirmer, navigator)
	if err != nil {
		return "", nil, err
	}

	result, err := t.submit.Handle(ctx, cmd)
	if err != nil {
		return "", nil, err
	}
	if infoErr != nil {
		return "", nil, infoErr
	}
	return redirect, result.Errors, nil
}
