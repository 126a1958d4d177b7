package mapper

import (
	"encoding/json"

	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/model"

	"gorm.io/datatypes"
)

type InterviewMapper struct{}

func NewInterviewMapper() *InterviewMapper {
	return &InterviewMapper{}
}

func (m *InterviewMapper) ToEntity(i *model.Interview) *entity.Interview {
	if i == nil {
		return nil
	}
	var history []entity.ChatMessage
	if len(i.ChatHistory) > 0 {
		_ = json.Unmarshal(i.ChatHistory, &history)
	}
	var result *entity.InterviewResult
	if len(i.Result) > 0 {
		result = &entity.InterviewResult{}
		if err := json.Unmarshal(i.Result, result); err != nil {
			result = nil
		}
	}
	var evaluation *entity.InterviewEvaluation
	if len(i.Evaluation) > 0 {
		evaluation = &entity.InterviewEvaluation{}
		if err := json.Unmarshal(i.Evaluation, evaluation); err != nil {
			evaluation = nil
		}
	}
	return &entity.Interview{
		Id:            i.Id,
		ApplicationId: i.ApplicationId,
		CandidateId:   i.CandidateId,
		Role:          i.Role,
		ScheduledAt:   i.ScheduledAt,
		StartedAt:     i.StartedAt,
		EndedAt:       i.EndedAt,
		Status:        entity.InterviewStatus(i.Status),
		ChatHistory:   history,
		Result:        result,
		Evaluation:    evaluation,
		RecordingURL:  i.RecordingURL,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func (m *InterviewMapper) ToModel(i *entity.Interview) *model.Interview {
	if i == nil {
		return nil
	}
	out := &model.Interview{
		Id:            i.Id,
		ApplicationId: i.ApplicationId,
		CandidateId:   i.CandidateId,
		Role:          i.Role,
		ScheduledAt:   i.ScheduledAt,
		StartedAt:     i.StartedAt,
		EndedAt:       i.EndedAt,
		Status:        string(i.Status),
		RecordingURL:  i.RecordingURL,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
	if i.ChatHistory != nil {
		history, _ := json.Marshal(i.ChatHistory)
		out.ChatHistory = datatypes.JSON(history)
	}
	if i.Result != nil {
		result, _ := json.Marshal(i.Result)
		out.Result = datatypes.JSON(result)
	}
	if i.Evaluation != nil {
		evaluation, _ := json.Marshal(i.Evaluation)
		out.Evaluation = datatypes.JSON(evaluation)
	}
	return out
}

func (m *InterviewMapper) ToEntities(interviews []*model.Interview) []*entity.Interview {
	entities := make([]*entity.Interview, len(interviews))
	for i, it := range interviews {
		entities[i] = m.ToEntity(it)
	}
	return entities
}
