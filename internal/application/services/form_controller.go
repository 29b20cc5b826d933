package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/DanielPopoola/cardform/internal/application"
	"github.com/DanielPopoola/cardform/internal/domain"
	"github.com/google/uuid"
)

// State of a form between user input and the remote answer.
type State string

const (
	StateEditing    State = "EDITING"
	StateSubmitting State = "SUBMITTING"
)

// FormController owns one form record and the last response received for it.
//
// Updates are serialized; the network call is made outside the lock, so
// several submissions may overlap. Whichever resolves last replaces the stored
// response. A failed submission is logged and leaves the previous response
// in place.
type FormController struct {
	submitter application.Submitter
	clock     func() time.Time
	logger    *slog.Logger

	mu       sync.Mutex
	form     domain.FormData
	response *domain.SubmissionResponse
	inFlight int
}

func NewFormController(
	submitter application.Submitter,
	clock func() time.Time,
	logger *slog.Logger,
) *FormController {
	if clock == nil {
		clock = time.Now
	}
	return &FormController{
		submitter: submitter,
		clock:     clock,
		logger:    logger,
	}
}

// Update replaces a single field of the form record.
func (c *FormController) Update(field domain.Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.form.With(field, value)
	if err != nil {
		return err
	}
	c.form = next
	return nil
}

func (c *FormController) Form() domain.FormData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

func (c *FormController) Response() *domain.SubmissionResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.response
}

func (c *FormController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state()
}

func (c *FormController) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return submittable(c.form, c.clock())
}

func submittable(form domain.FormData, now time.Time) bool {
	return domain.ValidateForm(form, now) && domain.HasRequiredFields(form)
}

// Submit sends the current form once. It returns application.ErrFormInvalid
// without sending anything when the form does not validate, and
// application.ErrFormIncomplete when a required field is empty. Failures of
// the remote call are only logged.
//
// The call is detached from ctx cancellation: once started, a submission
// runs to completion.
func (c *FormController) Submit(ctx context.Context) error {
	c.mu.Lock()
	form := c.form
	if !domain.ValidateForm(form, c.clock()) {
		c.mu.Unlock()
		return application.ErrFormInvalid
	}
	if !domain.HasRequiredFields(form) {
		c.mu.Unlock()
		return application.ErrFormIncomplete
	}
	c.inFlight++
	c.mu.Unlock()

	submissionID := uuid.NewString()
	logger := c.logger.With("submission_id", submissionID)
	logger.Info("submitting card details",
		"card_type", domain.DetectCardType(form.CardNo))

	resp, err := c.submitter.Submit(context.WithoutCancel(ctx), form)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight--

	if err != nil {
		logger.Error("card submission failed",
			"error", err,
			"category", application.CategorizeError(err))
		return nil
	}

	c.response = resp
	if resp == nil {
		logger.Info("card submission answered without a response")
		return nil
	}
	logger.Info("card submission answered", "success", resp.Success)
	return nil
}

func (c *FormController) state() State {
	if c.inFlight > 0 {
		return StateSubmitting
	}
	return StateEditing
}

// FieldValidity carries the per-field checks shown next to each input.
type FieldValidity struct {
	CardNo bool `json:"cardNo"`
	CVV    bool `json:"cvv"`
	Expiry bool `json:"expiry"`
}

// FormView is everything needed to render the form at one instant.
type FormView struct {
	Form            domain.FormData            `json:"form"`
	CardType        domain.CardType            `json:"cardType"`
	FormattedCardNo string                     `json:"formattedCardNo"`
	Valid           FieldValidity              `json:"valid"`
	Complete        bool                       `json:"complete"`
	CanSubmit       bool                       `json:"canSubmit"`
	State           State                      `json:"state"`
	Response        *domain.SubmissionResponse `json:"response,omitempty"`
	Message         string                     `json:"message,omitempty"`
	YearOptions     []int                      `json:"yearOptions"`
	MonthOptions    []domain.MonthOption       `json:"monthOptions"`
}

// View snapshots the form, its derived values and the last response.
func (c *FormController) View() FormView {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	form := c.form

	return FormView{
		Form:            form,
		CardType:        domain.DetectCardType(form.CardNo),
		FormattedCardNo: domain.FormatCardNumber(form.CardNo),
		Valid: FieldValidity{
			CardNo: domain.ValidateCardNumber(form.CardNo),
			CVV:    domain.ValidateCVV(form.CVV, domain.CardTypeUnknown),
			Expiry: domain.ValidateExpiry(form.ExpiryMonth, form.ExpiryYear, now),
		},
		Complete:     domain.HasRequiredFields(form),
		CanSubmit:    submittable(form, now),
		State:        c.state(),
		Response:     c.response,
		Message:      c.response.Message(),
		YearOptions:  domain.YearOptions(now),
		MonthOptions: domain.MonthOptions(),
	}
}
