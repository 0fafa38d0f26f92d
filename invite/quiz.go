package invite

import (
	"context"

	"sevgi/ledger"
	"sevgi/lifecycle"
	"sevgi/models"
	"sevgi/questions"
	"sevgi/scoring"
	"sevgi/store"
	"sevgi/utils"

	"github.com/sirupsen/logrus"
)

// GetQuizQuestions draws a fresh random sample of active questions
func (s *Service) GetQuizQuestions(ctx context.Context) ([]QuestionView, error) {
	qs, err := s.store.SampleActiveQuestions(ctx, s.opts.QuizSize)
	if err != nil {
		return nil, err
	}
	return questionViews(qs), nil
}

// GetQuizQuestionsFor is GetQuizQuestions for one invite. A finished invite
// gets ErrAlreadyFinished, its quiz can no longer be submitted. With
// StableQuiz set the sample only depends on the token.
func (s *Service) GetQuizQuestionsFor(ctx context.Context, token string) ([]QuestionView, error) {
	invite, err := s.load(ctx, s.store, token)
	if err != nil {
		return nil, err
	}
	if invite.Status.IsTerminal() {
		return nil, ErrAlreadyFinished
	}
	if !s.opts.StableQuiz {
		return s.GetQuizQuestions(ctx)
	}
	bank, err := s.store.ActiveQuestions(ctx)
	if err != nil {
		return nil, err
	}
	return questionViews(questions.SampleFor(bank, s.opts.QuizSize, invite.Token)), nil
}

// SubmitQuiz records the respondent's answers and finishes the invite. raw
// maps question ids to the submitted letters; anything that is not A or B
// is dropped. Recording, scoring and finishing happen in one transaction,
// so a failure leaves the invite as it was.
func (s *Service) SubmitQuiz(ctx context.Context, token string, raw map[uint64]string) (View, error) {
	choices := ledger.Normalize(raw)
	var result *models.Invite
	var summary scoring.Profile
	err := s.mutate(ctx, token, func(tx store.Store, invite *models.Invite) error {
		if invite.Status.IsTerminal() {
			return ErrAlreadyFinished
		}
		if len(choices) == 0 {
			return ErrNoAnswers
		}
		l := ledger.New(tx)
		n, err := l.Record(ctx, invite.ID, choices)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNoAnswers
		}
		if invite, err = s.apply(ctx, tx, invite, lifecycle.ActionRecordAnswers, nil); err != nil {
			return err
		}
		recorded, err := l.Choices(ctx, invite.ID)
		if err != nil {
			return err
		}
		summary = scoring.Build(recorded)
		result, err = s.apply(ctx, tx, invite, lifecycle.ActionFinish, map[string]interface{}{
			"result_summary": summary.Summary,
		})
		return err
	})
	if err != nil {
		return View{}, err
	}
	utils.Logger.WithFields(logrus.Fields{
		"invite":  result.ID,
		"answers": len(choices),
		"profile": summary.Key,
	}).Info("quiz finished")
	return s.view(result), nil
}

// GetResult builds the result page for the initiator. It can be called at
// any time, the profile parts stay nil until answers exist.
func (s *Service) GetResult(ctx context.Context, token string) (Result, error) {
	invite, err := s.load(ctx, s.store, token)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Invite:      s.view(invite),
		FullSummary: lifecycle.CanViewFullSummary(invite.Status),
	}
	if invite.HasRespondent() {
		note := scoring.Compatibility(invite.InitiatorTrait, *invite.RespondentTrait)
		res.Compatibility = &note
	}
	choices, err := ledger.New(s.store).Choices(ctx, invite.ID)
	if err != nil {
		return Result{}, err
	}
	if len(choices) == 0 {
		return res, nil
	}
	profile := scoring.Build(choices)
	pair := scoring.PairProfile(invite.InitiatorTrait, invite.RespondentTraitOrEmpty())
	res.Profile = &profile
	res.Pair = &pair
	return res, nil
}
