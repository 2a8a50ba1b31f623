package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/config"
	"github.com/publibudget/go-commitment-engine/internal/models"
)

func TestDocumentRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(documentTestSuite))
}

type documentTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    DocumentRepository
}

func (suite *documentTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB

	suite.t = suite.T()
	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetDocumentRepository()
}

func (suite *documentTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
	defer suite.readDB.Close()
}

var documentCols = []string{
	"id",
	"kind",
	"budgetLineId",
	"sourceKind",
	"sourceId",
	"fournisseurId",
	"beneficiaireLibre",
	"objet",
	"montant",
	"montantPaye",
	"statut",
	"createdAt",
	"validatedAt",
	"receivedAt",
	"ordonnanceAt",
	"paidAt",
	"cancelledAt",
	"updatedAt",
	"version",
}

func (suite *documentTestSuite) TestRepository_Get() {
	createdAt := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	validatedAt := time.Date(2024, 3, 12, 14, 0, 0, 0, time.UTC)

	type args struct {
		ctx        context.Context
		id         string
		setupMocks func()
	}

	testCases := []struct {
		name    string
		args    args
		check   func(t *testing.T, doc *models.CommitmentDocument)
		wantErr error
	}{
		{
			name: "test sourced engagement",
			args: args{
				ctx: context.Background(),
				id:  "ENG-001",
				setupMocks: func() {
					rows := sqlmock.
						NewRows(documentCols).
						AddRow("ENG-001", "engagement", "LIG-001", "reservation", "RES-001", "FRN-042", nil,
							"commande mobilier", "400000", "0", "valide", createdAt, validatedAt, nil, nil, nil, nil, validatedAt, 2)
					suite.mock.
						ExpectQuery(regexp.QuoteMeta(queryGetDocument)).
						WillReturnRows(rows)
				},
			},
			check: func(t *testing.T, doc *models.CommitmentDocument) {
				assert.Equal(t, models.OperationEngagement, doc.Kind)
				require.NotNil(t, doc.SourceKind)
				assert.Equal(t, models.SourceReservation, *doc.SourceKind)
				require.NotNil(t, doc.SourceID)
				assert.Equal(t, "RES-001", *doc.SourceID)
				require.NotNil(t, doc.ValidatedAt)
				assert.True(t, doc.ValidatedAt.Equal(validatedAt))
				assert.Nil(t, doc.BeneficiaireLibre)
				assert.Nil(t, doc.CancelledAt)
				assert.True(t, doc.Montant.Equal(decimal.RequireFromString("400000")))
			},
		},
		{
			name: "test draft without source",
			args: args{
				ctx: context.Background(),
				id:  "RES-001",
				setupMocks: func() {
					rows := sqlmock.
						NewRows(documentCols).
						AddRow("RES-001", "reservation", "LIG-001", nil, nil, nil, "Jean Dupont",
							"marche T2", "400000", "0", "active", createdAt, nil, nil, nil, nil, nil, createdAt, 1)
					suite.mock.
						ExpectQuery(regexp.QuoteMeta(queryGetDocument)).
						WillReturnRows(rows)
				},
			},
			check: func(t *testing.T, doc *models.CommitmentDocument) {
				assert.Nil(t, doc.SourceKind)
				assert.Nil(t, doc.SourceID)
				require.NotNil(t, doc.BeneficiaireLibre)
				assert.Equal(t, "Jean Dupont", *doc.BeneficiaireLibre)
			},
		},
		{
			name: "test data not found",
			args: args{
				ctx: context.Background(),
				id:  "ENG-404",
				setupMocks: func() {
					suite.mock.
						ExpectQuery(regexp.QuoteMeta(queryGetDocument)).
						WillReturnError(sql.ErrNoRows)
				},
			},
			wantErr: common.ErrDocumentNotFound,
		},
		{
			name: "test error result",
			args: args{
				ctx: context.Background(),
				id:  "ENG-001",
				setupMocks: func() {
					suite.mock.
						ExpectQuery(regexp.QuoteMeta(queryGetDocument)).
						WillReturnError(assert.AnError)
				},
			},
			wantErr: assert.AnError,
		},
	}
	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.args.setupMocks()

			got, err := suite.repo.Get(tt.args.ctx, tt.args.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func (suite *documentTestSuite) TestRepository_Create() {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	sourceKind := models.SourceReservation
	sourceID := "RES-001"
	fournisseurID := "FRN-042"

	doc := &models.CommitmentDocument{
		ID:            "ENG-001",
		Kind:          models.OperationEngagement,
		BudgetLineID:  "LIG-001",
		SourceKind:    &sourceKind,
		SourceID:      &sourceID,
		FournisseurID: &fournisseurID,
		Objet:         "commande mobilier",
		Montant:       decimal.RequireFromString("400000"),
		MontantPaye:   decimal.Zero,
		Statut:        models.EngagementStatusBrouillon,
		CreatedAt:     now,
		LastUpdatedAt: now,
		Version:       1,
	}

	suite.t.Run("test success", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(queryCreateDocument)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, suite.repo.Create(context.Background(), doc))
	})

	suite.t.Run("test no rows affected", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(queryCreateDocument)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, suite.repo.Create(context.Background(), doc), common.ErrNoRowsAffected)
	})
}

func (suite *documentTestSuite) TestRepository_Update() {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	newDoc := func() *models.CommitmentDocument {
		return &models.CommitmentDocument{
			ID:            "ENG-001",
			Kind:          models.OperationEngagement,
			BudgetLineID:  "LIG-001",
			Montant:       decimal.RequireFromString("400000"),
			MontantPaye:   decimal.Zero,
			Statut:        models.EngagementStatusValide,
			ValidatedAt:   &now,
			LastUpdatedAt: now,
			Version:       2,
		}
	}

	suite.t.Run("test success bumps the version", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(queryUpdateDocument)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		doc := newDoc()
		require.NoError(t, suite.repo.Update(context.Background(), doc))
		assert.Equal(t, 3, doc.Version)
	})

	suite.t.Run("test stale version", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(queryUpdateDocument)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		doc := newDoc()
		assert.ErrorIs(t, suite.repo.Update(context.Background(), doc), common.ErrConcurrentModification)
		assert.Equal(t, 2, doc.Version)
	})
}

func (suite *documentTestSuite) TestRepository_SumSourceConsumption() {
	suite.t.Run("test success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"coalesce"}).AddRow("250000")
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(querySumSourceConsumption)).
			WillReturnRows(rows)

		got, err := suite.repo.SumSourceConsumption(context.Background(), models.SourceReservation, "RES-001")
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.RequireFromString("250000")))
	})

	suite.t.Run("test error result", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(querySumSourceConsumption)).
			WillReturnError(assert.AnError)

		_, err := suite.repo.SumSourceConsumption(context.Background(), models.SourceReservation, "RES-001")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func (suite *documentTestSuite) TestRepository_List() {
	createdAt := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	opts := models.DocumentFilterOptions{Kind: models.OperationReservation, Statut: "active"}
	query, _, err := buildListDocumentsQuery(opts)
	require.NoError(suite.t, err)

	rows := sqlmock.
		NewRows(documentCols).
		AddRow("RES-002", "reservation", "LIG-001", nil, nil, nil, nil,
			"marche T3", "150000", "0", "active", createdAt.AddDate(0, 0, 1), nil, nil, nil, nil, nil, createdAt, 1).
		AddRow("RES-001", "reservation", "LIG-001", nil, nil, nil, nil,
			"marche T2", "400000", "0", "active", createdAt, nil, nil, nil, nil, nil, createdAt, 1)
	suite.mock.
		ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(rows)

	got, err := suite.repo.List(context.Background(), opts)
	require.NoError(suite.t, err)
	require.Len(suite.t, got, 2)
	assert.Equal(suite.t, "RES-002", got[0].ID)
}
