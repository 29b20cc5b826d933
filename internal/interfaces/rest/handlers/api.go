package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/cardform/internal/api"
	"github.com/DanielPopoola/cardform/internal/application"
	"github.com/DanielPopoola/cardform/internal/application/services"
	"github.com/DanielPopoola/cardform/internal/domain"
	"github.com/DanielPopoola/cardform/internal/interfaces/rest"
)

func (h *Handlers) GetForm(
	ctx context.Context,
	_ api.GetFormRequestObject,
) (api.GetFormResponseObject, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}

	return api.GetForm200JSONResponse(formViewResponse(sess)), nil
}

// UpdateField replaces one form field. Selects carry their number as a
// decimal string, "" clearing the selection.
func (h *Handlers) UpdateField(
	ctx context.Context,
	request api.UpdateFieldRequestObject,
) (api.UpdateFieldResponseObject, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}

	req := request.Body
	if req == nil {
		return updateFieldError(application.NewInvalidInputError(errors.New("missing request body")))
	}

	field, err := domain.ParseField(string(req.Field))
	if err != nil {
		return updateFieldError(err)
	}

	if err := sess.Controller.Update(field, req.Value); err != nil {
		return updateFieldError(err)
	}

	return api.UpdateField200JSONResponse(formViewResponse(sess)), nil
}

// SubmitForm sends the form once and answers after the remote call resolved.
// A failed call is not an API error: the view keeps the previous response.
func (h *Handlers) SubmitForm(
	ctx context.Context,
	_ api.SubmitFormRequestObject,
) (api.SubmitFormResponseObject, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}

	if err := sess.Controller.Submit(ctx); err != nil {
		if errors.Is(err, application.ErrFormInvalid) || errors.Is(err, application.ErrFormIncomplete) {
			_, errorResponse := rest.BuildErrorResponse(err)
			return api.SubmitForm422JSONResponse(errorResponse), nil
		}
		return nil, application.NewInternalError(err)
	}

	return api.SubmitForm200JSONResponse(formViewResponse(sess)), nil
}

func formViewResponse(sess *services.Session) api.FormViewResponse {
	return api.FormViewResponse{
		Success: true,
		Data:    rest.ToAPIFormView(sess.Controller.View()),
	}
}

func updateFieldError(err error) (api.UpdateFieldResponseObject, error) {
	statusCode, errorResponse := rest.BuildErrorResponse(err)
	if statusCode == http.StatusBadRequest {
		return api.UpdateField400JSONResponse(errorResponse), nil
	}
	return nil, err
}
