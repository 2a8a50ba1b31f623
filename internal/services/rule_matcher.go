package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/common/log"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/repositories"
)

// matchRule selects the accounting rule for one operation. Active rules are
// evaluated in ascending ordre; the first whose conditions all hold wins and
// later rules are never consulted. Operator downgrades are a configuration
// smell and get logged per condition.
func (srv *Services) matchRule(ctx context.Context, r repositories.SQLRepository, op models.OperationType, facts models.Facts, asOf time.Time) (*models.AccountingRule, error) {
	rules, err := r.GetRuleRepository().ListActive(ctx, op)
	if err != nil {
		return nil, err
	}

	for i := range rules {
		rule := rules[i]
		if !rule.IsValidAt(asOf) {
			continue
		}

		matched, downgradedChamps := rule.MatchesFacts(facts, srv.fieldTypes)
		for _, champ := range downgradedChamps {
			log.Warn(ctx, "[RULE-MATCHER] condition operator downgraded",
				log.String("ruleId", rule.ID),
				log.String("champ", champ),
				log.String("typeOperation", op.String()))
			srv.metrics.GetRuleMatchPrometheus().RecordDowngrade(op.String())
		}

		if matched {
			srv.metrics.GetRuleMatchPrometheus().RecordMatch(op.String())
			return &rule, nil
		}
	}

	srv.metrics.GetRuleMatchPrometheus().RecordNoMatch(op.String())

	return nil, common.ErrNoApplicableRule
}

// generatePosting is a pure function of its inputs: no ledger side effects.
func generatePosting(id string, doc *models.CommitmentDocument, rule *models.AccountingRule, amount decimal.Decimal, at time.Time) models.JournalPosting {
	return models.JournalPosting{
		ID:           id,
		DocumentID:   doc.ID,
		Operation:    doc.Kind,
		RuleID:       rule.ID,
		CompteDebit:  rule.CompteDebit,
		CompteCredit: rule.CompteCredit,
		Montant:      amount,
		PostingDate:  at,
		CreatedAt:    at,
	}
}

// postTransition matches a rule for the document's facts and stores the
// resulting posting. Without a matching rule the transition is blocked,
// unless the deployment explicitly allows unposted transitions.
// The budget line contributes the exercice fact; callers that moved budget
// pass the line they already hold, a nil line is looked up here.
func (srv *Services) postTransition(ctx context.Context, r repositories.SQLRepository, doc *models.CommitmentDocument, line *models.BudgetLine, amount decimal.Decimal, ev *pendingEvents) error {
	asOf := srv.clock.Now()

	if line == nil {
		var errLine error
		if line, errLine = r.GetBudgetLineRepository().Get(ctx, doc.BudgetLineID); errLine != nil {
			return errLine
		}
	}

	facts := doc.Facts()
	facts[models.FactExercice] = models.NumberValue(decimal.NewFromInt(int64(line.Exercice())))

	rule, err := srv.matchRule(ctx, r, doc.Kind, facts, asOf)
	if err != nil {
		if errors.Is(err, common.ErrNoApplicableRule) {
			log.Warn(ctx, "[POSTING] no applicable accounting rule",
				log.String("documentId", doc.ID),
				log.String("typeOperation", doc.Kind.String()))
			if srv.conf.RuleMatching.AllowUnpostedTransitions {
				return nil
			}
		}
		return err
	}

	posting := generatePosting(srv.idgenerator.Generate(idPrefixPosting), doc, rule, amount, asOf)
	if err := r.GetJournalRepository().Create(ctx, posting); err != nil {
		return err
	}

	ev.addPosting(posting, asOf)

	return nil
}

// reversePostings writes an equal-and-opposite posting for every unreversed
// posting of the document. Postings themselves are never mutated.
func (srv *Services) reversePostings(ctx context.Context, r repositories.SQLRepository, doc *models.CommitmentDocument, ev *pendingEvents) error {
	postings, err := r.GetJournalRepository().ListUnreversedByDocument(ctx, doc.ID)
	if err != nil {
		return err
	}

	at := srv.clock.Now()
	for _, p := range postings {
		reversal := p.Reverse(srv.idgenerator.Generate(idPrefixPosting), at)
		if err := r.GetJournalRepository().Create(ctx, reversal); err != nil {
			return err
		}
		ev.addPosting(reversal, at)
	}

	return nil
}
