package mapper

import (
	"encoding/json"

	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/model"

	"gorm.io/datatypes"
)

type JobMapper struct{}

func NewJobMapper() *JobMapper {
	return &JobMapper{}
}

func (m *JobMapper) ToEntity(j *model.Job) *entity.Job {
	if j == nil {
		return nil
	}
	var requirements []string
	if len(j.Requirements) > 0 {
		// Malformed column data degrades to an empty list rather than failing the read.
		_ = json.Unmarshal(j.Requirements, &requirements)
	}
	return &entity.Job{
		Id:            j.Id,
		RecruiterId:   j.RecruiterId,
		Title:         j.Title,
		Description:   j.Description,
		Requirements:  requirements,
		Location:      j.Location,
		Type:          entity.JobType(j.Type),
		SalaryMin:     j.SalaryMin,
		SalaryMax:     j.SalaryMax,
		InterviewRole: j.InterviewRole,
		Status:        entity.JobStatus(j.Status),
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
}

func (m *JobMapper) ToModel(j *entity.Job) *model.Job {
	if j == nil {
		return nil
	}
	requirements, _ := json.Marshal(j.Requirements)
	return &model.Job{
		Id:            j.Id,
		RecruiterId:   j.RecruiterId,
		Title:         j.Title,
		Description:   j.Description,
		Requirements:  datatypes.JSON(requirements),
		Location:      j.Location,
		Type:          string(j.Type),
		SalaryMin:     j.SalaryMin,
		SalaryMax:     j.SalaryMax,
		InterviewRole: j.InterviewRole,
		Status:        string(j.Status),
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
}

func (m *JobMapper) ToEntities(jobs []*model.Job) []*entity.Job {
	entities := make([]*entity.Job, len(jobs))
	for i, j := range jobs {
		entities[i] = m.ToEntity(j)
	}
	return entities
}
