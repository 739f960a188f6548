package controllers

import (
	"context"
	"net/http"

	"github.com/anonymous-namo-1/golden-era/api/responses"
	"github.com/anonymous-namo-1/golden-era/api/validators"
	"github.com/anonymous-namo-1/golden-era/internal/leads"
	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
	"github.com/anonymous-namo-1/golden-era/pkg/logger"
	"github.com/anonymous-namo-1/golden-era/pkg/types"
)

const (
	msgAppointmentBooked = "Appointment booked successfully"
	msgRequestSubmitted  = "Request submitted successfully"
	msgMessageSent       = "Message sent successfully"
	msgContactSoon       = "We'll contact you soon"
	msgSubscribed        = "Subscribed successfully"
	msgAlreadySubscribed = "Already subscribed"
)

type appointmentPayload struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	City           string `json:"city" validate:"required"`
	PreferredStore string `json:"preferredStore" validate:"required"`
	Date           string `json:"date" validate:"required"`
	Time           string `json:"time" validate:"required"`
	Purpose        string `json:"purpose" validate:"required"`
}

type exchangeLeadPayload struct {
	Name              string `json:"name" validate:"required"`
	Phone             string `json:"phone" validate:"required"`
	Email             string `json:"email" validate:"required"`
	City              string `json:"city" validate:"required"`
	GoldType          string `json:"goldType" validate:"required"`
	ApproximateWeight string `json:"approximateWeight" validate:"required"`
}

type contactPayload struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message" validate:"required"`
}

type storeQueryPayload struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Pincode   string `json:"pincode" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
}

type newsletterPayload struct {
	Email string `json:"email" validate:"required,email"`
}

// submitLead decodes dest, hands it to submit and writes {message, id}.
func submitLead[T any](svc leads.Service, logg *logger.Logger, message string, submit func(context.Context, *T) (string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "lead service unavailable"))
			return
		}

		var payload T
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		id, err := submit(ctx, &payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, types.MessageWithID{Message: message, ID: id})
	}
}

func BookAppointment(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return submitLead(svc, logg, msgAppointmentBooked, func(ctx context.Context, p *appointmentPayload) (string, error) {
		return svc.BookAppointment(ctx, models.Appointment{
			Name:           p.Name,
			Phone:          p.Phone,
			City:           p.City,
			PreferredStore: p.PreferredStore,
			Date:           p.Date,
			Time:           p.Time,
			Purpose:        p.Purpose,
		})
	})
}

func SubmitExchangeLead(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return submitLead(svc, logg, msgRequestSubmitted, func(ctx context.Context, p *exchangeLeadPayload) (string, error) {
		return svc.SubmitExchangeLead(ctx, models.ExchangeLead{
			Name:              p.Name,
			Phone:             p.Phone,
			Email:             p.Email,
			City:              p.City,
			GoldType:          p.GoldType,
			ApproximateWeight: p.ApproximateWeight,
		})
	})
}

func SubmitContact(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return submitLead(svc, logg, msgMessageSent, func(ctx context.Context, p *contactPayload) (string, error) {
		return svc.SubmitContact(ctx, models.ContactForm{
			Name:    p.Name,
			Email:   p.Email,
			Phone:   p.Phone,
			Message: p.Message,
		})
	})
}

func SubmitStoreQuery(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return submitLead(svc, logg, msgContactSoon, func(ctx context.Context, p *storeQueryPayload) (string, error) {
		return svc.SubmitStoreQuery(ctx, models.StoreQuery{
			Name:      p.Name,
			Phone:     p.Phone,
			Pincode:   p.Pincode,
			ProductID: p.ProductID,
		})
	})
}

// Subscribe adds an email to the newsletter. A repeat address is reported as
// already subscribed, not as an error.
func Subscribe(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "lead service unavailable"))
			return
		}

		var payload newsletterPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		subscribed, err := svc.Subscribe(ctx, payload.Email)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if !subscribed {
			responses.WriteMessage(w, msgAlreadySubscribed)
			return
		}
		responses.WriteMessage(w, msgSubscribed)
	}
}
