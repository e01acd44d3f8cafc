package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vestra-backend/internal/domain/currency"
	invDomain "vestra-backend/internal/domain/investment"
	planDomain "vestra-backend/internal/domain/plan"
	"vestra-backend/internal/domain/uow"
	userDomain "vestra-backend/internal/domain/user"
	walletDomain "vestra-backend/internal/domain/wallet"
	"vestra-backend/internal/testutil/investmock"
	"vestra-backend/internal/testutil/notifymock"
	"vestra-backend/internal/testutil/planmock"
	"vestra-backend/internal/testutil/settingsmock"
	"vestra-backend/internal/testutil/txmock"
	"vestra-backend/internal/testutil/uowmock"
	"vestra-backend/internal/testutil/usermock"
	"vestra-backend/internal/testutil/walletmock"
	uc "vestra-backend/internal/usecase/investment"

	"github.com/labstack/echo/v4"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

var testUserID = strings.Repeat("a", 32)

func passthroughUoW(repos uow.Repos) *uowmock.UoW {
	return uowmock.New().WithWithinTx(func(ctx context.Context, fn func(uow.Repos) error) error {
		return fn(repos)
	})
}

// happyCreateRepos wires every repository an investment creation touches.
func happyCreateRepos(balance float64) uow.Repos {
	return uow.Repos{
		Plans: &planmock.Repo{GetByPlanIDFn: func(context.Context, string) (*planDomain.Plan, error) {
			return &planDomain.Plan{
				PlanID: strings.Repeat("b", 32), Name: "Starter",
				DailyROI: 5, TotalROI: 150, DurationDays: 30,
				MinAmount: 1_000, MaxAmount: 1_000_000,
				Currency: currency.Naira, Active: true,
			}, nil
		}},
		Investments: &investmock.Repo{},
		Users: &usermock.Repo{GetByUserIDFn: func(context.Context, string) (*userDomain.User, error) {
			return &userDomain.User{UserID: testUserID, WelcomeBonusGiven: true}, nil
		}},
		Wallets: &walletmock.Repo{GetByUserIDFn: func(context.Context, string) (*walletDomain.Wallet, error) {
			return &walletDomain.Wallet{UserID: testUserID, NairaBalance: balance}, nil
		}},
		Transactions: &txmock.Repo{},
	}
}

// -------- tests --------

func TestCreateInvestment_Success(t *testing.T) {
	e := newEchoWithValidator()
	usecase := uc.NewUsecase(passthroughUoW(happyCreateRepos(50_000)), settingsmock.Production(), &notifymock.Sink{})
	h := NewInvestmentHandler(usecase)

	reqBody := map[string]any{
		"plan_id":  strings.Repeat("b", 32),
		"amount":   10000,
		"currency": "naira",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/investments", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Ax-User-Id", testUserID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateInvestment(c); err != nil {
		t.Fatalf("CreateInvestment error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	var got uc.InvestmentDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.UserID != testUserID || got.Amount != 10_000 {
		t.Fatalf("unexpected dto: %+v", got)
	}
	if got.Status != string(invDomain.StatusActive) {
		t.Fatalf("status = %s, want active", got.Status)
	}
}

func TestCreateInvestment_MissingUserHeader(t *testing.T) {
	e := newEchoWithValidator()
	h := NewInvestmentHandler(uc.NewUsecase(uowmock.New(), settingsmock.Production(), &notifymock.Sink{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/investments", mustJSON(map[string]any{}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateInvestment(c); err != nil {
		t.Fatalf("CreateInvestment error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateInvestment_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewInvestmentHandler(uc.NewUsecase(uowmock.New(), settingsmock.Production(), &notifymock.Sink{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/investments", strings.NewReader(`{"plan_id":`)) // broken JSON
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Ax-User-Id", testUserID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateInvestment(c); err != nil {
		t.Fatalf("CreateInvestment error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateInvestment_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewInvestmentHandler(uc.NewUsecase(uowmock.New(), settingsmock.Production(), &notifymock.Sink{}))

	reqBody := map[string]any{
		"plan_id":  "short",
		"amount":   10.123, // more than 2 decimals
		"currency": "doge",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/investments", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Ax-User-Id", testUserID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateInvestment(c); err != nil {
		t.Fatalf("CreateInvestment error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(er.Details) != 3 {
		t.Fatalf("want 3 field errors, got %+v", er.Details)
	}
}

func TestCreateInvestment_InsufficientBalance_422WithShortfall(t *testing.T) {
	e := newEchoWithValidator()
	usecase := uc.NewUsecase(passthroughUoW(happyCreateRepos(2_500)), settingsmock.Production(), &notifymock.Sink{})
	h := NewInvestmentHandler(usecase)

	reqBody := map[string]any{
		"plan_id":  strings.Repeat("b", 32),
		"amount":   10000,
		"currency": "naira",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/investments", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Ax-User-Id", testUserID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateInvestment(c); err != nil {
		t.Fatalf("CreateInvestment error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body %s)", rec.Code, rec.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body["required"].(float64) != 10_000 || body["available"].(float64) != 2_500 {
		t.Fatalf("shortfall payload wrong: %+v", body)
	}
}

func TestGetInvestment_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	repos := uow.Repos{Investments: &investmock.Repo{}} // default mock: not found
	h := NewInvestmentHandler(uc.NewUsecase(passthroughUoW(repos), settingsmock.Production(), &notifymock.Sink{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/investments/"+strings.Repeat("c", 32), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("investment_id")
	c.SetParamValues(strings.Repeat("c", 32))

	if err := h.GetInvestment(c); err != nil {
		t.Fatalf("GetInvestment error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCancelInvestment_NotActive_400(t *testing.T) {
	e := newEchoWithValidator()
	inv := &invDomain.Investment{InvestmentID: strings.Repeat("c", 32), Status: invDomain.StatusCompleted}
	u := uowmock.New().WithWithinInvestmentTx(
		func(ctx context.Context, investmentID string, fn func(uow.Repos, *invDomain.Investment) error) error {
			return fn(uow.Repos{Investments: &investmock.Repo{}}, inv)
		})
	h := NewInvestmentHandler(uc.NewUsecase(u, settingsmock.Production(), &notifymock.Sink{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/investments/"+inv.InvestmentID+"/cancel", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("investment_id")
	c.SetParamValues(inv.InvestmentID)

	if err := h.CancelInvestment(c); err != nil {
		t.Fatalf("CancelInvestment error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
