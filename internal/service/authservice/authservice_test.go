package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/blackvant/backend/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)

	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestIdentify(t *testing.T) {
	service, userRepo := NewMock(t)
	ctx := context.Background()

	existing := &domain.User{ID: 7, SubjectID: "sub-existing", Email: "known@example.com", Role: domain.RoleAdmin}
	created := &domain.User{ID: 8, SubjectID: "sub-new", Email: "new@example.com", Role: domain.RoleClient}

	tests := []struct {
		name          string
		subjectID     string
		email         string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:      "Known subject resolves without create",
			subjectID: "sub-existing",
			email:     "known@example.com",
			prepareMock: func() {
				userRepo.EXPECT().FindBySubjectID(ctx, "sub-existing").Return(existing, nil)
			},
			expectedUser: existing,
		},
		{
			name:      "Unknown subject creates a client user",
			subjectID: "sub-new",
			email:     "new@example.com",
			prepareMock: func() {
				userRepo.EXPECT().FindBySubjectID(ctx, "sub-new").Return(nil, nil)
				userRepo.EXPECT().Create(ctx, &domain.User{
					SubjectID: "sub-new",
					Email:     "new@example.com",
					Role:      domain.RoleClient,
				}).Return(created, nil)
			},
			expectedUser: created,
		},
		{
			name:          "Empty subject is rejected",
			subjectID:     "",
			email:         "whoever@example.com",
			prepareMock:   func() {},
			expectedError: ErrInvalidSubject,
		},
		{
			name:      "Lookup failure propagates",
			subjectID: "sub-broken",
			email:     "broken@example.com",
			prepareMock: func() {
				userRepo.EXPECT().FindBySubjectID(ctx, "sub-broken").Return(nil, errors.New("connection lost"))
			},
			expectedError: errors.New("connection lost"),
		},
		{
			name:      "Create failure propagates",
			subjectID: "sub-racy",
			email:     "racy@example.com",
			prepareMock: func() {
				userRepo.EXPECT().FindBySubjectID(ctx, "sub-racy").Return(nil, nil)
				userRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("duplicate key"))
			},
			expectedError: errors.New("duplicate key"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Identify(ctx, tt.subjectID, tt.email)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}
