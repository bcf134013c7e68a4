// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package demo

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/dropindemo/internal/i18n"
)

type fakeAPI struct {
	token    string
	tokenErr error
	txID     string
	txErr    error
	fetches  int
	nonces   []string
	accounts []string
}

func (f *fakeAPI) CreateCustomerAndFetchClientToken(ctx context.Context) (string, error) {
	f.fetches++
	return f.token, f.tokenErr
}

func (f *fakeAPI) MakeTransaction(ctx context.Context, nonce, merchantAccountID string) (string, error) {
	f.nonces = append(f.nonces, nonce)
	f.accounts = append(f.accounts, merchantAccountID)
	return f.txID, f.txErr
}

type fakeSession struct {
	auth      string
	framework UIFramework
	emit      Emitter
	ended     bool
	updates   int
}

func (s *fakeSession) Title() string          { return "Fake" }
func (s *fakeSession) Authorization() string  { return s.auth }
func (s *fakeSession) Framework() UIFramework { return s.framework }
func (s *fakeSession) Init() tea.Cmd          { return nil }
func (s *fakeSession) View() string           { return "fake:" + s.auth }
func (s *fakeSession) End()                   { s.ended = true }

func (s *fakeSession) Update(tea.Msg) tea.Cmd {
	s.updates++
	return nil
}

type fakeFactory struct {
	sessions []*fakeSession
	err      error
}

func (f *fakeFactory) NewSession(authorization string, framework UIFramework, emit Emitter) (Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := &fakeSession{auth: authorization, framework: framework, emit: emit}
	f.sessions = append(f.sessions, s)
	return s, nil
}

type statusLog []string

func (l *statusLog) SetStatus(s string) { *l = append(*l, s) }

func (l statusLog) last() string {
	if len(l) == 0 {
		return ""
	}
	return l[len(l)-1]
}

func newTestController(t *testing.T, s Settings, api *fakeAPI, f *fakeFactory) (*Controller, *statusLog) {
	t.Helper()
	i18n.Init("en")
	var log statusLog
	return NewController(StaticSettings(s), api, f, &log), &log
}

// run executes cmd and feeds the resulting message back into the controller.
func run(c *Controller, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	c.Update(cmd())
}

func TestReload_OverrideStartsSession(t *testing.T) {
	api := &fakeAPI{}
	f := &fakeFactory{}
	c, log := newTestController(t, Settings{AuthorizationOverride: "sandbox_override", UIFramework: UIFrameworkLegacy}, api, f)

	if cmd := c.Reload(context.Background()); cmd != nil {
		t.Fatalf("synchronous source should not return a command")
	}
	if c.State() != StateActive {
		t.Fatalf("state = %s, want active", c.State())
	}
	if len(f.sessions) != 1 || f.sessions[0].auth != "sandbox_override" {
		t.Fatalf("expected one session with override auth, got %+v", f.sessions)
	}
	if api.fetches != 0 {
		t.Fatalf("override must not fetch a client token")
	}
	if log.last() != "Presenting Fake" {
		t.Fatalf("status = %q", log.last())
	}
	if c.Source().Kind != SourceOverride {
		t.Fatalf("source = %s", c.Source())
	}
}

func TestReload_MockedFlowStatus(t *testing.T) {
	f := &fakeFactory{}
	c, log := newTestController(t, Settings{UseMockedPayPalFlow: true}, &fakeAPI{}, f)
	c.Reload(context.Background())
	if len(*log) != 2 || (*log)[0] != "Using Tokenization Key" {
		t.Fatalf("statuses = %v", *log)
	}
	if f.sessions[0].auth != MockedFlowTokenizationKey {
		t.Fatalf("auth = %q", f.sessions[0].auth)
	}
}

func TestReload_FetchClientToken(t *testing.T) {
	api := &fakeAPI{token: "client-token-1"}
	f := &fakeFactory{}
	c, log := newTestController(t, Settings{}, api, f)

	cmd := c.Reload(context.Background())
	if cmd == nil {
		t.Fatalf("fetch path should return a command")
	}
	if c.State() != StateStarting || log.last() != "Fetching Client Token..." {
		t.Fatalf("state=%s status=%q", c.State(), log.last())
	}
	if c.Session() != nil {
		t.Fatalf("no session expected before the token arrives")
	}
	run(c, cmd)
	if api.fetches != 1 {
		t.Fatalf("fetches = %d", api.fetches)
	}
	if c.State() != StateActive || f.sessions[0].auth != "client-token-1" {
		t.Fatalf("session not started with fetched token: state=%s", c.State())
	}
}

func TestReload_FetchFailureReportsError(t *testing.T) {
	api := &fakeAPI{tokenErr: errors.New("connection refused")}
	f := &fakeFactory{}
	c, log := newTestController(t, Settings{}, api, f)

	run(c, c.Reload(context.Background()))
	if log.last() != "connection refused" {
		t.Fatalf("status = %q", log.last())
	}
	if c.Session() != nil || len(f.sessions) != 0 {
		t.Fatalf("no session should be started after a failed fetch")
	}
	if c.State() != StateIdle {
		t.Fatalf("state = %s", c.State())
	}
}

func TestReload_FetchEmptyErrorFallsBack(t *testing.T) {
	c, log := newTestController(t, Settings{}, &fakeAPI{}, &fakeFactory{})
	run(c, c.Reload(context.Background()))
	if log.last() != "An unknown error occurred." {
		t.Fatalf("status = %q", log.last())
	}
}

func TestReload_FrameworkUnavailable(t *testing.T) {
	f := &fakeFactory{err: ErrFrameworkUnavailable}
	c, log := newTestController(t, Settings{UseTokenizationKey: true, UIFramework: UIFrameworkDeclarative}, &fakeAPI{}, f)
	c.Reload(context.Background())
	if log.last() != "Demo not available" {
		t.Fatalf("status = %q", log.last())
	}
	if c.Session() != nil || c.State() != StateIdle {
		t.Fatalf("expected no session, state idle; got state %s", c.State())
	}
}

func TestReload_TearsDownPreviousSession(t *testing.T) {
	f := &fakeFactory{}
	c, _ := newTestController(t, Settings{UseTokenizationKey: true}, &fakeAPI{}, f)
	c.Reload(context.Background())
	c.Update(PaymentMethodMsg{Generation: c.Generation(), Method: PaymentMethod{Nonce: "fake-valid-nonce", Type: "Visa"}})
	if !c.TransactionEnabled() {
		t.Fatalf("transaction should be enabled after a nonce arrives")
	}

	c.Reload(context.Background())
	if !f.sessions[0].ended {
		t.Fatalf("previous session was not ended")
	}
	if c.Session() != f.sessions[1] {
		t.Fatalf("controller should hold the new session")
	}
	if c.TransactionEnabled() {
		t.Fatalf("stored nonce must be cleared on reload")
	}
}

func TestUpdate_DropsStaleClientToken(t *testing.T) {
	api := &fakeAPI{token: "old-token"}
	f := &fakeFactory{}
	c, _ := newTestController(t, Settings{}, api, f)

	staleCmd := c.Reload(context.Background())
	staleMsg := staleCmd()

	c.SetSettings(StaticSettings(Settings{UseTokenizationKey: true, Environment: EnvironmentSandbox}))
	c.Reload(context.Background())
	c.Update(staleMsg)

	if len(f.sessions) != 1 {
		t.Fatalf("stale token started a session: %d sessions", len(f.sessions))
	}
	if f.sessions[0].auth != SandboxTokenizationKey {
		t.Fatalf("auth = %q", f.sessions[0].auth)
	}
}

func TestUpdate_DropsStalePaymentMethod(t *testing.T) {
	c, _ := newTestController(t, Settings{UseTokenizationKey: true}, &fakeAPI{}, &fakeFactory{})
	c.Reload(context.Background())
	old := c.Generation()
	c.Reload(context.Background())

	c.Update(PaymentMethodMsg{Generation: old, Method: PaymentMethod{Nonce: "stale"}})
	if c.TransactionEnabled() {
		t.Fatalf("stale payment method must be ignored")
	}
}

func TestTransaction_UnionPayUsesMerchantAccount(t *testing.T) {
	api := &fakeAPI{txID: "txn_123"}
	c, log := newTestController(t, Settings{UseTokenizationKey: true}, api, &fakeFactory{})
	c.Reload(context.Background())
	c.Update(PaymentMethodMsg{Generation: c.Generation(), Method: PaymentMethod{Nonce: "fake-valid-unionpay-nonce", Type: "UnionPay"}})
	if c.State() != StatePaymentMethodObtained {
		t.Fatalf("state = %s", c.State())
	}
	if log.last() != "Got a nonce. Press ctrl+t to make a transaction." {
		t.Fatalf("status = %q", log.last())
	}

	cmd := c.TriggerTransaction(context.Background())
	if cmd == nil {
		t.Fatalf("expected transaction command")
	}
	if c.TransactionEnabled() {
		t.Fatalf("nonce must be cleared as soon as the transaction is triggered")
	}
	if c.State() != StateTransactionInFlight || log.last() != "Creating Transaction..." {
		t.Fatalf("state=%s status=%q", c.State(), log.last())
	}
	run(c, cmd)

	if len(api.accounts) != 1 || api.accounts[0] != "fake_switch_usd" {
		t.Fatalf("merchant accounts = %v", api.accounts)
	}
	if api.nonces[0] != "fake-valid-unionpay-nonce" {
		t.Fatalf("nonce = %q", api.nonces[0])
	}
	if c.State() != StateActive || log.last() != "txn_123" {
		t.Fatalf("state=%s status=%q", c.State(), log.last())
	}
}

func TestTransaction_VisaOmitsMerchantAccount(t *testing.T) {
	api := &fakeAPI{txID: "txn_456"}
	c, _ := newTestController(t, Settings{UseTokenizationKey: true}, api, &fakeFactory{})
	c.Reload(context.Background())
	c.Update(PaymentMethodMsg{Generation: c.Generation(), Method: PaymentMethod{Nonce: "fake-valid-visa-nonce", Type: "Visa"}})
	run(c, c.TriggerTransaction(context.Background()))
	if len(api.accounts) != 1 || api.accounts[0] != "" {
		t.Fatalf("merchant accounts = %v", api.accounts)
	}
}

func TestTransaction_ErrorBecomesStatus(t *testing.T) {
	api := &fakeAPI{txErr: errors.New("Processor Declined")}
	c, log := newTestController(t, Settings{UseTokenizationKey: true}, api, &fakeFactory{})
	c.Reload(context.Background())
	c.Update(PaymentMethodMsg{Generation: c.Generation(), Method: PaymentMethod{Nonce: "n", Type: "Visa"}})
	run(c, c.TriggerTransaction(context.Background()))
	if log.last() != "Processor Declined" {
		t.Fatalf("status = %q", log.last())
	}
	if c.State() != StateActive || c.TransactionEnabled() {
		t.Fatalf("after failure: state=%s enabled=%v", c.State(), c.TransactionEnabled())
	}
}

func TestTriggerTransaction_NoopWithoutNonce(t *testing.T) {
	api := &fakeAPI{}
	c, _ := newTestController(t, Settings{UseTokenizationKey: true}, api, &fakeFactory{})
	c.Reload(context.Background())
	if cmd := c.TriggerTransaction(context.Background()); cmd != nil {
		t.Fatalf("trigger without nonce should be a no-op")
	}
	if len(api.nonces) != 0 {
		t.Fatalf("no transaction expected")
	}
}

func TestUpdate_ProgressAndForwarding(t *testing.T) {
	f := &fakeFactory{}
	c, log := newTestController(t, Settings{UseTokenizationKey: true, Environment: EnvironmentSandbox}, &fakeAPI{}, f)

	c.Update(ProgressMsg{Generation: c.Generation(), Status: "ignored"})
	if len(*log) != 0 {
		t.Fatalf("progress without session must be ignored: %v", *log)
	}

	c.Reload(context.Background())
	c.Update(ProgressMsg{Generation: c.Generation(), Status: "Tokenizing card..."})
	if log.last() != "Tokenizing card..." {
		t.Fatalf("status = %q", log.last())
	}
	c.Update(ProgressMsg{Generation: c.Generation()})
	if log.last() != "Tokenizing card..." {
		t.Fatalf("empty progress must not change status")
	}

	c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if f.sessions[0].updates != 1 {
		t.Fatalf("unrelated messages should be forwarded to the session")
	}
	if c.View() != "fake:"+SandboxTokenizationKey {
		t.Fatalf("View = %q", c.View())
	}
}

func TestEmitterTagsGeneration(t *testing.T) {
	f := &fakeFactory{}
	c, _ := newTestController(t, Settings{UseTokenizationKey: true}, &fakeAPI{}, f)
	c.Reload(context.Background())
	emit := f.sessions[0].emit
	if emit.Generation() != c.Generation() {
		t.Fatalf("emitter generation %d, controller %d", emit.Generation(), c.Generation())
	}
	run(c, emit.PaymentMethod(PaymentMethod{Nonce: "abc", Type: "Visa"}))
	pm, ok := c.PaymentMethod()
	if !ok || pm.Nonce != "abc" {
		t.Fatalf("payment method not stored: %+v", pm)
	}
}

func TestShutdownEndsSession(t *testing.T) {
	f := &fakeFactory{}
	c, _ := newTestController(t, Settings{UseTokenizationKey: true}, &fakeAPI{}, f)
	c.Reload(context.Background())
	c.Shutdown()
	if !f.sessions[0].ended || c.Session() != nil || c.State() != StateIdle {
		t.Fatalf("shutdown did not end the session")
	}
}

func TestMerchantAccountFor(t *testing.T) {
	if MerchantAccountFor("UnionPay") != "fake_switch_usd" {
		t.Fatalf("UnionPay should map to fake_switch_usd")
	}
	for _, typ := range []string{"Visa", "unionpay", ""} {
		if MerchantAccountFor(typ) != "" {
			t.Fatalf("%q should omit the merchant account", typ)
		}
	}
}

func TestReload_ZeroSettingsStartLegacyFlow(t *testing.T) {
	f := &fakeFactory{}
	c, log := newTestController(t, Settings{UseTokenizationKey: true}, &fakeAPI{}, f)
	c.Reload(context.Background())
	if len(f.sessions) != 1 || f.sessions[0].framework != UIFrameworkLegacy {
		t.Fatalf("empty framework should start the legacy flow, got %+v", f.sessions)
	}
	if c.State() != StateActive || log.last() != "Presenting Fake" {
		t.Fatalf("state=%s status=%q", c.State(), log.last())
	}
}

func TestUpdate_DropsStaleTransaction(t *testing.T) {
	api := &fakeAPI{txID: "txn_stale"}
	c, log := newTestController(t, Settings{UseTokenizationKey: true}, api, &fakeFactory{})
	c.Reload(context.Background())
	c.Update(PaymentMethodMsg{Generation: c.Generation(), Method: PaymentMethod{Nonce: "fake-valid-unionpay-nonce", Type: UnionPayType}})

	cmd := c.TriggerTransaction(context.Background())
	if cmd == nil {
		t.Fatalf("expected transaction command")
	}
	c.Reload(context.Background())
	status, state := log.last(), c.State()

	run(c, cmd)
	if len(api.nonces) != 1 {
		t.Fatalf("the request itself still runs, got %v", api.nonces)
	}
	if log.last() != status || c.State() != state {
		t.Fatalf("stale transaction result changed state=%s status=%q", c.State(), log.last())
	}
	if c.State() != StateActive || c.TransactionEnabled() {
		t.Fatalf("after stale result: state=%s enabled=%v", c.State(), c.TransactionEnabled())
	}
}

func TestEmitterTransactSpendsStoredNonce(t *testing.T) {
	api := &fakeAPI{txID: "txn_flow"}
	f := &fakeFactory{}
	c, log := newTestController(t, Settings{UseTokenizationKey: true}, api, f)
	c.Reload(context.Background())
	emit := f.sessions[0].emit

	if cmd := c.Update(emit.Transact()()); cmd != nil {
		t.Fatalf("transact without a stored nonce should be a no-op")
	}

	run(c, emit.PaymentMethod(PaymentMethod{Nonce: "fake-valid-visa-nonce", Type: "Visa"}))
	cmd := c.Update(emit.Transact()())
	if cmd == nil || c.State() != StateTransactionInFlight {
		t.Fatalf("expected a transaction in flight, state=%s", c.State())
	}
	run(c, cmd)
	if log.last() != "txn_flow" || len(api.nonces) != 1 {
		t.Fatalf("status=%q nonces=%v", log.last(), api.nonces)
	}

	run(c, emit.PaymentMethod(PaymentMethod{Nonce: "fake-valid-visa-nonce", Type: "Visa"}))
	c.Reload(context.Background())
	if cmd := c.Update(emit.Transact()()); cmd != nil {
		t.Fatalf("transact from an ended session must be dropped")
	}
}
