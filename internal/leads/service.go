package leads

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anonymous-namo-1/golden-era/pkg/db"
	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
)

// LeadRepository defines the persistence surface required by the service.
type LeadRepository interface {
	Insert(ctx context.Context, collection string, doc any) error
	InsertSubscription(ctx context.Context, sub models.NewsletterSubscription) (inserted bool, err error)
}

// Service captures storefront forms. Every capture stamps an id and a UTC
// creation time before the single insert.
type Service interface {
	BookAppointment(ctx context.Context, appt models.Appointment) (string, error)
	SubmitExchangeLead(ctx context.Context, lead models.ExchangeLead) (string, error)
	SubmitContact(ctx context.Context, form models.ContactForm) (string, error)
	SubmitStoreQuery(ctx context.Context, query models.StoreQuery) (string, error)
	// Subscribe reports subscribed=false when the email already exists.
	Subscribe(ctx context.Context, email string) (subscribed bool, err error)
}

type service struct {
	repo  LeadRepository
	newID func() string
	now   func() time.Time
}

func NewService(repo LeadRepository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "lead repository is required")
	}
	return &service{repo: repo, newID: uuid.NewString, now: time.Now}, nil
}

func (s *service) stamp() (string, models.Timestamp) {
	return s.newID(), models.NewTimestamp(s.now())
}

func (s *service) insert(ctx context.Context, collection string, doc any, id string) (string, error) {
	if err := s.repo.Insert(ctx, collection, doc); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save "+collection)
	}
	return id, nil
}

func (s *service) BookAppointment(ctx context.Context, appt models.Appointment) (string, error) {
	if err := requireFields(map[string]string{
		"name":           appt.Name,
		"phone":          appt.Phone,
		"city":           appt.City,
		"preferredStore": appt.PreferredStore,
		"date":           appt.Date,
		"time":           appt.Time,
		"purpose":        appt.Purpose,
	}); err != nil {
		return "", err
	}
	appt.ID, appt.CreatedAt = s.stamp()
	return s.insert(ctx, db.CollectionAppointments, appt, appt.ID)
}

func (s *service) SubmitExchangeLead(ctx context.Context, lead models.ExchangeLead) (string, error) {
	if err := requireFields(map[string]string{
		"name":              lead.Name,
		"phone":             lead.Phone,
		"email":             lead.Email,
		"city":              lead.City,
		"goldType":          lead.GoldType,
		"approximateWeight": lead.ApproximateWeight,
	}); err != nil {
		return "", err
	}
	lead.ID, lead.CreatedAt = s.stamp()
	return s.insert(ctx, db.CollectionExchangeLeads, lead, lead.ID)
}

func (s *service) SubmitContact(ctx context.Context, form models.ContactForm) (string, error) {
	if err := requireFields(map[string]string{
		"name":    form.Name,
		"email":   form.Email,
		"message": form.Message,
	}); err != nil {
		return "", err
	}
	form.ID, form.CreatedAt = s.stamp()
	return s.insert(ctx, db.CollectionContactForms, form, form.ID)
}

func (s *service) SubmitStoreQuery(ctx context.Context, query models.StoreQuery) (string, error) {
	if err := requireFields(map[string]string{
		"name":      query.Name,
		"phone":     query.Phone,
		"pincode":   query.Pincode,
		"productId": query.ProductID,
	}); err != nil {
		return "", err
	}
	query.ID, query.CreatedAt = s.stamp()
	return s.insert(ctx, db.CollectionStoreQueries, query, query.ID)
}

func (s *service) Subscribe(ctx context.Context, email string) (bool, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"email": "is required"})
	}
	id, createdAt := s.stamp()
	inserted, err := s.repo.InsertSubscription(ctx, models.NewsletterSubscription{ID: id, Email: email, CreatedAt: createdAt})
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "subscribe newsletter")
	}
	return inserted, nil
}

// NormalizeEmail trims and lowercases so one mailbox maps to one row.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func requireFields(fields map[string]string) error {
	missing := map[string]string{}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing[name] = "is required"
		}
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(missing)
	}
	return nil
}
