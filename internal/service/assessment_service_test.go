package service

import (
	"testing"

	"edu_assessment_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssessmentRequestKindValidation(t *testing.T) {
	cases := []struct {
		name      string
		req       CreateAssessmentRequest
		wantField string
	}{
		{
			name: "quiz with lesson and position",
			req: CreateAssessmentRequest{
				Slug: "q", Title: "Q", Type: "QUIZ",
				LessonID:     strPtr("lesson-1"),
				QuizPosition: strPtr("AFTER_LESSON"),
			},
		},
		{
			name: "timed exam with time limit",
			req: CreateAssessmentRequest{
				Slug: "e", Title: "E", Type: "TIMED_EXAM",
				TimeLimitInMinutes: intPtr(60),
			},
		},
		{
			name: "open exam with nothing extra",
			req:  CreateAssessmentRequest{Slug: "o", Title: "O", Type: "OPEN_EXAM"},
		},
		{
			name: "timed exam with lesson",
			req: CreateAssessmentRequest{
				Slug: "e", Title: "E", Type: "TIMED_EXAM",
				LessonID: strPtr("lesson-1"),
			},
			wantField: "lessonId",
		},
		{
			name: "open exam with quiz position",
			req: CreateAssessmentRequest{
				Slug: "o", Title: "O", Type: "OPEN_EXAM",
				QuizPosition: strPtr("BEFORE_LESSON"),
			},
			wantField: "quizPosition",
		},
		{
			name: "quiz with time limit",
			req: CreateAssessmentRequest{
				Slug: "q", Title: "Q", Type: "QUIZ",
				TimeLimitInMinutes: intPtr(30),
			},
			wantField: "timeLimitInMinutes",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.validateKindFields()
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var invalid *util.InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.wantField, invalid.Field)
			assert.Equal(t, "kind", invalid.Rule)
		})
	}
}
