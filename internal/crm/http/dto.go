package http

import (
	"github.com/sellside/prospectd/internal/crm/domain"
	"github.com/sellside/prospectd/pkg/crmsdk"
)

func toProspectDTO(p domain.Prospect) crmsdk.Prospect {
	return crmsdk.Prospect{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Website:   p.Website,
		Phone:     p.Phone,
		Pain:      p.Pain,
		PainScore: p.PainScore,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toProspectDTOs(ps []domain.Prospect) []crmsdk.Prospect {
	out := make([]crmsdk.Prospect, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProspectDTO(p))
	}
	return out
}

func toDealDTO(d domain.Deal) crmsdk.Deal {
	return crmsdk.Deal{
		ID:          d.ID,
		ProspectID:  d.ProspectID,
		DealValue:   d.DealValue,
		Stage:       d.Stage,
		StageReason: d.StageReason,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toDealDTOs(ds []domain.Deal) []crmsdk.Deal {
	out := make([]crmsdk.Deal, 0, len(ds))
	for _, d := range ds {
		out = append(out, toDealDTO(d))
	}
	return out
}

func toPaymentDTO(p domain.Payment) crmsdk.Payment {
	return crmsdk.Payment{
		ID:        p.ID,
		DealID:    p.DealID,
		Amount:    p.Amount,
		Method:    p.Method,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}

func toPaymentDTOs(ps []domain.Payment) []crmsdk.Payment {
	out := make([]crmsdk.Payment, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPaymentDTO(p))
	}
	return out
}

func toInteractionDTO(in domain.Interaction) crmsdk.Interaction {
	return crmsdk.Interaction{
		ID:            in.ID,
		ProspectID:    in.ProspectID,
		Channel:       in.Channel,
		Type:          in.Type,
		AttemptNumber: in.AttemptNumber,
		Content:       in.Content,
		ResponseType:  in.ResponseType,
		Success:       in.Success,
		CreatedAt:     in.CreatedAt,
	}
}

func toInteractionDTOs(ins []domain.Interaction) []crmsdk.Interaction {
	out := make([]crmsdk.Interaction, 0, len(ins))
	for _, in := range ins {
		out = append(out, toInteractionDTO(in))
	}
	return out
}
