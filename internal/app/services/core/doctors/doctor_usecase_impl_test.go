package doctors

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/exceptions"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const pngDataURL = "data:image/png;base64,iVBORw0KGgo="

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *MockDoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	args := m.Called(ctx, email)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorRepository) Insert(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadBase64Image(ctx context.Context, encodedImage []byte, bucketName, fileName, fileExtension string) (string, error) {
	args := m.Called(ctx, encodedImage, bucketName, fileName, fileExtension)
	return args.String(0), args.Error(1)
}

func newTestDoctorUsecase(repo *MockDoctorRepository, storage *MockStorage) *doctorUsecase {
	return NewDoctorUsecase(repo, storage, config.AppMinio{
		BucketName:                      "portraits",
		DoctorPortraitMaxUploadSizeInMB: 1,
	}, zap.NewNop()).(*doctorUsecase)
}

func validDoctor() *requests.CreateDoctor {
	return &requests.CreateDoctor{
		Name:      "Dr. Ada",
		Email:     "Ada@Clinic.com",
		Specialty: "Orthodontics",
	}
}

func TestCreateDoctor(t *testing.T) {
	ctx := context.Background()

	t.Run("Without Image", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		storage := new(MockStorage)
		repo.On("FindByEmail", ctx, "ada@clinic.com").Return(nil, nil)
		repo.On("Insert", ctx, mock.MatchedBy(func(doctor *models.Doctor) bool {
			return doctor.Email == "ada@clinic.com" && doctor.Img == "" && !doctor.CreatedAt.IsZero()
		})).Return("65a000000000000000000001", nil)
		uc := newTestDoctorUsecase(repo, storage)

		result, err := uc.CreateDoctor(ctx, validDoctor())
		require.NoError(t, err)
		assert.Equal(t, "65a000000000000000000001", result.InsertedID)
		storage.AssertNotCalled(t, "UploadBase64Image", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("With Image Uploads Portrait", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		storage := new(MockStorage)
		repo.On("FindByEmail", ctx, "ada@clinic.com").Return(nil, nil)
		storage.On("UploadBase64Image", ctx, mock.Anything, "portraits", mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "doctor_ada_at_clinic_com_") && strings.HasSuffix(name, ".png")
		}), ".png").Return("http://minio/portraits/doctor.png", nil)
		repo.On("Insert", ctx, mock.MatchedBy(func(doctor *models.Doctor) bool {
			return doctor.Img == "http://minio/portraits/doctor.png"
		})).Return("id", nil)
		uc := newTestDoctorUsecase(repo, storage)

		request := validDoctor()
		request.Image = pngDataURL
		_, err := uc.CreateDoctor(ctx, request)
		require.NoError(t, err)
		storage.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("Rejects Unsupported Image Format", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		repo.On("FindByEmail", ctx, "ada@clinic.com").Return(nil, nil)
		uc := newTestDoctorUsecase(repo, new(MockStorage))

		request := validDoctor()
		request.Image = "data:image/gif;base64,R0lGODlh"
		_, err := uc.CreateDoctor(ctx, request)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Rejects Missing Specialty", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		uc := newTestDoctorUsecase(repo, new(MockStorage))

		request := validDoctor()
		request.Specialty = ""
		_, err := uc.CreateDoctor(ctx, request)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
		repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate Email Is A Conflict", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		repo.On("FindByEmail", ctx, "ada@clinic.com").Return(&models.Doctor{Email: "ada@clinic.com"}, nil)
		uc := newTestDoctorUsecase(repo, new(MockStorage))

		_, err := uc.CreateDoctor(ctx, validDoctor())
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
	})

	t.Run("Upload Failure", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		storage := new(MockStorage)
		repo.On("FindByEmail", ctx, "ada@clinic.com").Return(nil, nil)
		storage.On("UploadBase64Image", ctx, mock.Anything, "portraits", mock.Anything, ".png").
			Return("", exceptions.ErrMinioCreateObject(errors.New("no bucket"), "portraits"))
		uc := newTestDoctorUsecase(repo, storage)

		request := validDoctor()
		request.Image = pngDataURL
		_, err := uc.CreateDoctor(ctx, request)
		assert.Equal(t, constvars.StatusServiceUnavailable, exceptions.StatusCodeOf(err))
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestDeleteDoctor(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		count int64
	}{
		{name: "Existing", count: 1},
		{name: "Unknown Answers Zero", count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockDoctorRepository)
			repo.On("DeleteByEmail", ctx, "ada@clinic.com").Return(tt.count, nil)
			uc := newTestDoctorUsecase(repo, new(MockStorage))

			result, err := uc.DeleteDoctor(ctx, "ADA@clinic.com")
			require.NoError(t, err)
			assert.Equal(t, tt.count, result.DeletedCount)
		})
	}
}

func TestListDoctors(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDoctorRepository)
	repo.On("FindAll", ctx).Return([]models.Doctor{{Email: "a@x.com"}, {Email: "b@x.com"}}, nil)
	uc := newTestDoctorUsecase(repo, new(MockStorage))

	doctors, err := uc.ListDoctors(ctx)
	require.NoError(t, err)
	assert.Len(t, doctors, 2)
}
