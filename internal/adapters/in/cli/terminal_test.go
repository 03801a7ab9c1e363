package cli_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"checkout/internal/adapters/in/cli"
	"checkout/internal/adapters/out/memory/sessionrepo"
	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedDriver answers prompts by label from per-label queues and records
// every prompt and info line.
type scriptedDriver struct {
	answers  map[string][]string
	confirms []bool
	prompts  []string
	infos    []string
}

func (d *scriptedDriver) next(kind string, cfg cli.InputConfig) (string, error) {
	d.prompts = append(d.prompts, kind+":"+cfg.Message)
	queue := d.answers[cfg.Message]
	if len(queue) == 0 {
		return "", cli.ErrAborted
	}
	d.answers[cfg.Message] = queue[1:]
	return queue[0], nil
}

func (d *scriptedDriver) Input(_ context.Context, cfg cli.InputConfig) (string, error) {
	return d.next("input", cfg)
}

func (d *scriptedDriver) Password(_ context.Context, cfg cli.InputConfig) (string, error) {
	return d.next("password", cfg)
}

func (d *scriptedDriver) TextArea(_ context.Context, cfg cli.InputConfig) (string, error) {
	return d.next("textarea", cfg)
}

func (d *scriptedDriver) Confirm(_ context.Context, _ cli.ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return true, nil
	}
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func newTerminal(driver cli.PromptDriver) (*cli.Terminal, *sessionrepo.Repository) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := sessionrepo.NewRepository()
	return cli.NewTerminal(
		commands.NewCreateSessionCommandHandler(sessions),
		commands.NewSetFieldCommandHandler(sessions),
		commands.NewSubmitCheckoutCommandHandler(sessions, services.NewCheckoutValidator(), nil, logger),
		queries.NewGetSessionQueryHandler(sessions),
		driver,
	), sessions
}

func TestTerminal_Run_ValidFirstTime(t *testing.T) {
	driver := &scriptedDriver{answers: map[string][]string{
		"Name":                {"Jane Doe"},
		"Email":               {"jane@example.com"},
		"Address":             {"1 Main St"},
		"Card Number":         {"4111111111111111"},
		"Expiry Date (MM/YY)": {"09/27"},
		"CVV":                 {"123"},
	}}
	terminal, sessions := newTerminal(driver)

	redirect, err := terminal.Run(t.Context())

	require.NoError(t, err)
	assert.Equal(t, "/", redirect)
	assert.Equal(t, []string{
		"input:Name",
		"input:Email",
		"textarea:Address",
		"input:Card Number",
		"input:Expiry Date (MM/YY)",
		"password:CVV",
	}, driver.prompts)
	assert.Equal(t, []string{"Order placed successfully!"}, driver.infos)
	assert.Zero(t, sessions.Len(), "the session is discarded once the order is placed")
}

func TestTerminal_Run_ReasksOnlyInvalidFields(t *testing.T) {
	driver := &scriptedDriver{answers: map[string][]string{
		"Name":                {"Jane Doe"},
		"Email":               {"jane@example", "jane@example.com"},
		"Address":             {"1 Main St"},
		"Card Number":         {"4111111111111111"},
		"Expiry Date (MM/YY)": {"09/27"},
		"CVV":                 {"12", "123"},
	}}
	terminal, _ := newTerminal(driver)

	redirect, err := terminal.Run(t.Context())

	require.NoError(t, err)
	assert.Equal(t, "/", redirect)
	assert.Equal(t, []string{"input:Email", "password:CVV"}, driver.prompts[6:])
	assert.Equal(t, []string{
		"2 field(s) need attention.",
		"  Valid email is required.",
		"  Valid 3-digit CVV is required.",
		"Order placed successfully!",
	}, driver.infos)
}

func TestTerminal_Run_DeclinedConfirmationReasksEverything(t *testing.T) {
	answers := map[string][]string{}
	for label, value := range map[string]string{
		"Name":                "Jane Doe",
		"Email":               "jane@example.com",
		"Address":             "1 Main St",
		"Card Number":         "4111111111111111",
		"Expiry Date (MM/YY)": "09/27",
		"CVV":                 "123",
	} {
		answers[label] = []string{value, value}
	}
	driver := &scriptedDriver{answers: answers, confirms: []bool{false, true}}
	terminal, _ := newTerminal(driver)

	_, err := terminal.Run(t.Context())

	require.NoError(t, err)
	assert.Len(t, driver.prompts, 12)
}

func TestTerminal_Run_Aborted(t *testing.T) {
	driver := &scriptedDriver{answers: map[string][]string{
		"Name": {"Jane Doe"},
	}}
	terminal, _ := newTerminal(driver)

	_, err := terminal.Run(t.Context())

	require.ErrorIs(t, err, cli.ErrAborted)
	assert.Equal(t, []string{"input:Name", "input:Email"}, driver.prompts, fmt.Sprint(driver.prompts))
}
