package accountingrule

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/common/log"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/services/mock"
)

func ruleFixture() *models.AccountingRule {
	ts := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	return &models.AccountingRule{
		ID:            "RGL-001",
		TypeOperation: models.OperationEngagement,
		Libelle:       "Engagements subventionnes",
		Conditions: models.Conditions{
			{
				Champ:     models.FactSourceFinancement,
				Operateur: models.OperatorEq,
				Valeur:    models.TextValue("subvention_etat"),
			},
		},
		CompteDebit:  "6011",
		CompteCredit: "4081",
		Actif:        true,
		Ordre:        10,
		Permanente:   true,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
}

const ruleFixtureJSON = `{"id":"RGL-001","typeOperation":"engagement","libelle":"Engagements subventionnes","conditions":[{"champ":"sourceFinancement","operateur":"==","valeur":"subvention_etat"}],"compteDebitId":"6011","compteCreditId":"4081","actif":true,"ordre":10,"permanente":true,"createdAt":"2025-01-15T08:00:00Z","updatedAt":"2025-01-15T08:00:00Z"}`

func Test_Handler_createRule(t *testing.T) {
	testHelper := ruleTestHelper(t)

	type args struct {
		ctx context.Context
		req models.CreateAccountingRuleReq
	}
	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name      string
		urlCalled string
		args      args
		mockData  mockData
		doMock    func(args args, mockData mockData)
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/accounting-rules",
			args: args{
				ctx: context.Background(),
				req: models.CreateAccountingRuleReq{
					TypeOperation: "engagement",
					Libelle:       "Engagements subventionnes",
					Conditions: models.Conditions{
						{
							Champ:     models.FactSourceFinancement,
							Operateur: models.OperatorEq,
							Valeur:    models.TextValue("subvention_etat"),
						},
					},
					CompteDebit:  "6011",
					CompteCredit: "4081",
					Ordre:        10,
					Permanente:   true,
				},
			},
			mockData: mockData{
				wantRes:  ruleFixtureJSON,
				wantCode: 201,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().Create(args.ctx, models.CreateAccountingRuleIn{
					TypeOperation: models.OperationEngagement,
					Libelle:       "Engagements subventionnes",
					Conditions: models.Conditions{
						{
							Champ:     models.FactSourceFinancement,
							Operateur: models.OperatorEq,
							Valeur:    models.TextValue("subvention_etat"),
						},
					},
					CompteDebit:  "6011",
					CompteCredit: "4081",
					Ordre:        10,
					Permanente:   true,
				}).Return(ruleFixture(), nil)
			},
		},
		{
			name:      "error validating request",
			urlCalled: "/api/v1/accounting-rules",
			args: args{
				ctx: context.Background(),
				req: models.CreateAccountingRuleReq{
					TypeOperation: "engagement",
				},
			},
			mockData: mockData{
				wantRes:  `{"status":"error","message":"validation error","errors":[{"code":"LIBELLE_REQUIRED","field":"libelle","message":"libelle is required"},{"code":"COMPTE_REQUIRED","field":"compteDebit","message":"compte debit is required"},{"code":"COMPTE_REQUIRED","field":"compteCredit","message":"compte credit is required"},{"code":"ORDRE_REQUIRED","field":"ordre","message":"ordre is required"}]}`,
				wantCode: 422,
			},
		},
		{
			name:      "error unknown operation type",
			urlCalled: "/api/v1/accounting-rules",
			args: args{
				ctx: context.Background(),
				req: models.CreateAccountingRuleReq{
					TypeOperation: "virement",
					Libelle:       "Engagements subventionnes",
					CompteDebit:   "6011",
					CompteCredit:  "4081",
					Ordre:         10,
					Permanente:    true,
				},
			},
			mockData: mockData{
				wantRes:  `{"status":"error","message":"validation error","errors":[{"code":"TYPE_OPERATION_INVALID","field":"typeOperation","message":"type operation is not a known operation"}]}`,
				wantCode: 422,
			},
		},
		{
			name:      "error service",
			urlCalled: "/api/v1/accounting-rules",
			args: args{
				ctx: context.Background(),
				req: models.CreateAccountingRuleReq{
					TypeOperation: "engagement",
					Libelle:       "Engagements subventionnes",
					CompteDebit:   "6011",
					CompteCredit:  "4081",
					Ordre:         10,
					Permanente:    true,
				},
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().Create(args.ctx, gomock.Any()).Return(nil, assert.AnError)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args, tt.mockData)
			}

			var b bytes.Buffer
			err := json.NewEncoder(&b).Encode(tt.args.req)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, tt.urlCalled, &b)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			require.Equal(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_getRule(t *testing.T) {
	testHelper := ruleTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		urlCalled   string
		expectation Expectation
		doMock      func()
	}{
		{
			name:      "happy path",
			urlCalled: "/api/v1/accounting-rules/RGL-001",
			expectation: Expectation{
				wantRes:  ruleFixtureJSON,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					Get(gomock.AssignableToTypeOf(context.Background()), "RGL-001").
					Return(ruleFixture(), nil)
			},
		},
		{
			name:      "error not found",
			urlCalled: "/api/v1/accounting-rules/RGL-404",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":404,"message":"accounting rule not found"}`,
				wantCode: 404,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					Get(gomock.AssignableToTypeOf(context.Background()), "RGL-404").
					Return(nil, common.ErrRuleNotFound)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			req := httptest.NewRequest(http.MethodGet, tc.urlCalled, nil)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tc.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tc.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_listRules(t *testing.T) {
	testHelper := ruleTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		urlCalled   string
		expectation Expectation
		doMock      func()
	}{
		{
			name:      "happy path",
			urlCalled: "/api/v1/accounting-rules?typeOperation=engagement&activeOnly=true",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[` + ruleFixtureJSON + `],"total_rows":1}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					List(gomock.AssignableToTypeOf(context.Background()), models.RuleFilterOptions{
						TypeOperation: models.OperationEngagement,
						ActiveOnly:    true,
					}).
					Return([]models.AccountingRule{*ruleFixture()}, nil)
			},
		},
		{
			name:      "error service",
			urlCalled: "/api/v1/accounting-rules",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					List(gomock.AssignableToTypeOf(context.Background()), models.RuleFilterOptions{}).
					Return(nil, assert.AnError)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			req := httptest.NewRequest(http.MethodGet, tc.urlCalled, nil)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tc.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tc.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_updateRule(t *testing.T) {
	testHelper := ruleTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		urlCalled   string
		req         models.CreateAccountingRuleReq
		expectation Expectation
		doMock      func()
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/accounting-rules/RGL-001",
			req: models.CreateAccountingRuleReq{
				TypeOperation: "engagement",
				Libelle:       "Engagements subventionnes",
				Conditions: models.Conditions{
					{
						Champ:     models.FactSourceFinancement,
						Operateur: models.OperatorEq,
						Valeur:    models.TextValue("subvention_etat"),
					},
				},
				CompteDebit:  "6011",
				CompteCredit: "4081",
				Ordre:        10,
				Permanente:   true,
			},
			expectation: Expectation{
				wantRes:  ruleFixtureJSON,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					Update(gomock.AssignableToTypeOf(context.Background()), "RGL-001", gomock.Any()).
					Return(ruleFixture(), nil)
			},
		},
		{
			name:      "error rule referenced by posting",
			urlCalled: "/api/v1/accounting-rules/RGL-001",
			req: models.CreateAccountingRuleReq{
				TypeOperation: "engagement",
				Libelle:       "Engagements subventionnes",
				CompteDebit:   "6011",
				CompteCredit:  "4081",
				Ordre:         10,
				Permanente:    true,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":409,"message":"accounting rule is referenced by a posting and cannot be changed"}`,
				wantCode: 409,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					Update(gomock.AssignableToTypeOf(context.Background()), "RGL-001", gomock.Any()).
					Return(nil, common.ErrRuleImmutable)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			var b bytes.Buffer
			err := json.NewEncoder(&b).Encode(tc.req)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPut, tc.urlCalled, &b)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tc.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tc.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_setRuleActive(t *testing.T) {
	testHelper := ruleTestHelper(t)

	boolPtr := func(v bool) *bool { return &v }

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		urlCalled   string
		req         models.SetRuleActiveReq
		expectation Expectation
		doMock      func()
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/accounting-rules/RGL-001/active",
			req:       models.SetRuleActiveReq{Actif: boolPtr(false)},
			expectation: Expectation{
				wantRes:  ``,
				wantCode: 204,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					SetActive(gomock.AssignableToTypeOf(context.Background()), "RGL-001", false).
					Return(nil)
			},
		},
		{
			name:      "error validating request",
			urlCalled: "/api/v1/accounting-rules/RGL-001/active",
			req:       models.SetRuleActiveReq{},
			expectation: Expectation{
				wantRes:  `{"status":"error","message":"validation error","errors":[{"code":"ACTIF_REQUIRED","field":"actif","message":"actif is required"}]}`,
				wantCode: 422,
			},
		},
		{
			name:      "error not found",
			urlCalled: "/api/v1/accounting-rules/RGL-404/active",
			req:       models.SetRuleActiveReq{Actif: boolPtr(true)},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":404,"message":"accounting rule not found"}`,
				wantCode: 404,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					SetActive(gomock.AssignableToTypeOf(context.Background()), "RGL-404", true).
					Return(common.ErrRuleNotFound)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			var b bytes.Buffer
			err := json.NewEncoder(&b).Encode(tc.req)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPatch, tc.urlCalled, &b)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tc.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tc.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

type testRuleHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockAccountingRuleService
}

func ruleTestHelper(t *testing.T) testRuleHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSvc := mock.NewMockAccountingRuleService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testRuleHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
