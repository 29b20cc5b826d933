package rest

import (
	"github.com/DanielPopoola/cardform/internal/api"
	"github.com/DanielPopoola/cardform/internal/application/services"
)

func ToAPIFormView(v services.FormView) api.FormView {
	months := make([]api.MonthOption, len(v.MonthOptions))
	for i, m := range v.MonthOptions {
		months[i] = api.MonthOption{Value: m.Value, Label: m.Label}
	}

	apiView := api.FormView{
		Form: api.FormData{
			Name:        v.Form.Name,
			CardNo:      v.Form.CardNo,
			Cvv:         v.Form.CVV,
			ExpiryMonth: v.Form.ExpiryMonth,
			ExpiryYear:  v.Form.ExpiryYear,
		},
		CardType:        api.FormViewCardType(v.CardType),
		FormattedCardNo: v.FormattedCardNo,
		Valid: api.FieldValidity{
			CardNo: v.Valid.CardNo,
			Cvv:    v.Valid.CVV,
			Expiry: v.Valid.Expiry,
		},
		Complete:     v.Complete,
		CanSubmit:    v.CanSubmit,
		State:        api.FormViewState(v.State),
		Message:      v.Message,
		YearOptions:  v.YearOptions,
		MonthOptions: months,
	}

	if v.Response != nil {
		apiView.Response = &api.SubmissionResponse{
			Success: v.Response.Success,
			Data:    v.Response.Data,
		}
	}

	return apiView
}
