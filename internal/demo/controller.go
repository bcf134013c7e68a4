// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package demo

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/dropindemo/internal/i18n"
	"github.com/toeirei/dropindemo/internal/logging"
)

// Card network tag whose transactions are routed to a dedicated merchant account.
const (
	UnionPayType              = "UnionPay"
	UnionPayMerchantAccountID = "fake_switch_usd"
)

// MerchantAccountFor returns the merchant account override for a payment
// method type, or "" when the request should omit it.
func MerchantAccountFor(paymentMethodType string) string {
	if paymentMethodType == UnionPayType {
		return UnionPayMerchantAccountID
	}
	return ""
}

// MerchantAPI is the merchant server the demo talks to.
type MerchantAPI interface {
	CreateCustomerAndFetchClientToken(ctx context.Context) (string, error)
	// MakeTransaction omits the merchant account when merchantAccountID is "".
	MakeTransaction(ctx context.Context, nonce, merchantAccountID string) (string, error)
}

// StatusSink displays the status line.
type StatusSink interface {
	SetStatus(status string)
}

// StatusSinkFunc adapts a function to StatusSink.
type StatusSinkFunc func(status string)

func (f StatusSinkFunc) SetStatus(status string) { f(status) }

// State is the integration lifecycle state.
type State int

const (
	StateIdle State = iota
	StateStarting
	StateActive
	StatePaymentMethodObtained
	StateTransactionInFlight
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StateActive:
		return "active"
	case StatePaymentMethodObtained:
		return "payment-method-obtained"
	case StateTransactionInFlight:
		return "transaction-in-flight"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Controller owns the active session and the stored payment method. It must
// only be used from a single goroutine (the bubbletea Update loop).
type Controller struct {
	settings SettingsSource
	resolver *Resolver
	api      MerchantAPI
	factory  SessionFactory
	sink     StatusSink

	// ctx is the context of the last Reload; flow-initiated transactions
	// run under it.
	ctx context.Context

	state      State
	generation uint64
	source     AuthorizationSource
	framework  UIFramework
	session    Session
	method     *PaymentMethod
	status     string
}

// Option configures a Controller.
type Option func(*Controller)

// WithResolver replaces the default resolution order.
func WithResolver(r *Resolver) Option {
	return func(c *Controller) { c.resolver = r }
}

// NewController wires a controller; sink may be nil.
func NewController(settings SettingsSource, api MerchantAPI, factory SessionFactory, sink StatusSink, opts ...Option) *Controller {
	c := &Controller{
		settings: settings,
		resolver: NewResolver(),
		api:      api,
		factory:  factory,
		sink:     sink,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetSettings swaps the settings source; takes effect on the next Reload.
func (c *Controller) SetSettings(settings SettingsSource) {
	c.settings = settings
}

func (c *Controller) State() State                { return c.state }
func (c *Controller) Generation() uint64          { return c.generation }
func (c *Controller) Session() Session            { return c.session }
func (c *Controller) Source() AuthorizationSource { return c.source }
func (c *Controller) Status() string              { return c.status }

// PaymentMethod returns the stored payment method, if any.
func (c *Controller) PaymentMethod() (PaymentMethod, bool) {
	if c.method == nil {
		return PaymentMethod{}, false
	}
	return *c.method, true
}

// TransactionEnabled reports whether the transaction trigger may be used.
func (c *Controller) TransactionEnabled() bool {
	return c.method != nil
}

// Reload ends the current session, then resolves an authorization and starts
// a new one. The returned command, if any, performs the client token fetch.
func (c *Controller) Reload(ctx context.Context) tea.Cmd {
	c.teardown()
	c.generation++
	c.state = StateStarting
	c.ctx = ctx

	settings := c.settings.DemoSettings()
	c.framework = ParseUIFramework(string(settings.UIFramework))

	source, err := c.resolver.Resolve(settings)
	if err != nil {
		logging.Warnf("resolve authorization: %v", err)
		c.state = StateIdle
		c.setStatus(i18n.T("status.no_authorization"))
		return nil
	}
	c.source = source
	logging.Debugf("generation %d resolved %s", c.generation, source)

	switch source.Kind {
	case SourceClientTokenFetch:
		c.setStatus(i18n.T("status.fetching_client_token"))
		return c.fetchClientToken(ctx, c.generation)
	case SourceMockedFlow:
		c.setStatus(i18n.T("status.using_tokenization_key"))
	}
	return c.start(source.Authorization)
}

// TriggerTransaction spends the stored nonce. It is a no-op unless a payment
// method is stored; the nonce is cleared before the request is issued.
func (c *Controller) TriggerTransaction(ctx context.Context) tea.Cmd {
	if c.state != StatePaymentMethodObtained || c.method == nil {
		logging.Debugf("transaction trigger ignored in state %s", c.state)
		return nil
	}
	method := *c.method
	c.method = nil
	c.state = StateTransactionInFlight
	c.setStatus(i18n.T("status.creating_transaction"))

	gen := c.generation
	api := c.api
	accountID := MerchantAccountFor(method.Type)
	return func() tea.Msg {
		id, err := api.MakeTransaction(ctx, method.Nonce, accountID)
		if err != nil {
			err = &TransactionError{Nonce: method.Nonce, Err: err}
		}
		return TransactionMsg{Generation: gen, TransactionID: id, Err: err}
	}
}

// Update consumes controller messages and forwards everything else to the
// active session.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ClientTokenMsg:
		if c.stale("client token", msg.Generation) || c.state != StateStarting {
			return nil
		}
		if msg.Err != nil || msg.Token == "" {
			logging.Errorf("client token fetch failed: %v", msg.Err)
			c.state = StateIdle
			c.setStatus(c.errorStatus(msg.Err))
			return nil
		}
		return c.start(msg.Token)

	case ProgressMsg:
		if c.stale("progress", msg.Generation) || c.session == nil || msg.Status == "" {
			return nil
		}
		c.setStatus(msg.Status)
		return nil

	case PaymentMethodMsg:
		if c.stale("payment method", msg.Generation) || c.session == nil {
			return nil
		}
		if c.state != StateActive && c.state != StatePaymentMethodObtained {
			logging.Debugf("payment method ignored in state %s", c.state)
			return nil
		}
		if msg.Method.Nonce == "" {
			return nil
		}
		method := msg.Method
		c.method = &method
		c.state = StatePaymentMethodObtained
		c.setStatus(i18n.T("status.got_nonce"))
		return nil

	case TransactMsg:
		if c.stale("transaction request", msg.Generation) {
			return nil
		}
		ctx := c.ctx
		if ctx == nil {
			ctx = context.Background()
		}
		return c.TriggerTransaction(ctx)

	case TransactionMsg:
		if c.stale("transaction", msg.Generation) || c.state != StateTransactionInFlight {
			return nil
		}
		c.state = StateActive
		if msg.Err != nil || msg.TransactionID == "" {
			logging.Errorf("transaction failed: %v", msg.Err)
			c.setStatus(c.errorStatus(msg.Err))
			return nil
		}
		c.setStatus(msg.TransactionID)
		return nil
	}

	if c.session != nil {
		return c.session.Update(msg)
	}
	return nil
}

// View renders the active session, or "" without one.
func (c *Controller) View() string {
	if c.session == nil {
		return ""
	}
	return c.session.View()
}

// Shutdown ends the active session without starting a new one.
func (c *Controller) Shutdown() {
	c.teardown()
	c.generation++
	c.state = StateIdle
}

func (c *Controller) teardown() {
	if c.session != nil {
		c.session.End()
		c.session = nil
	}
	c.method = nil
	c.source = AuthorizationSource{}
}

func (c *Controller) start(authorization string) tea.Cmd {
	session, err := c.factory.NewSession(authorization, c.framework, Emitter{generation: c.generation})
	if err != nil || session == nil {
		if err == nil {
			err = ErrFrameworkUnavailable
		}
		logging.Warnf("start %s session: %v", c.framework, err)
		c.state = StateIdle
		c.setStatus(i18n.T("status.demo_not_available"))
		return nil
	}
	c.session = session
	c.state = StateActive
	c.setStatus(i18n.T("status.presenting", session.Title()))
	return session.Init()
}

func (c *Controller) fetchClientToken(ctx context.Context, gen uint64) tea.Cmd {
	api := c.api
	return func() tea.Msg {
		token, err := api.CreateCustomerAndFetchClientToken(ctx)
		if err != nil {
			err = &FetchError{Err: err}
		}
		return ClientTokenMsg{Generation: gen, Token: token, Err: err}
	}
}

func (c *Controller) stale(what string, gen uint64) bool {
	if gen != c.generation {
		logging.Debugf("dropping stale %s result from generation %d (current %d)", what, gen, c.generation)
		return true
	}
	return false
}

func (c *Controller) errorStatus(err error) string {
	if text := errorText(err); text != "" {
		return text
	}
	return i18n.T("status.unknown_error")
}

func (c *Controller) setStatus(status string) {
	c.status = status
	logging.Infof("status: %s", status)
	if c.sink != nil {
		c.sink.SetStatus(status)
	}
}
