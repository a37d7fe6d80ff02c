package doctors

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const doctorPortraitFilePrefix = "doctor"

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Storage          contracts.Storage
	MinioConfig      config.AppMinio
	Log              *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	storage contracts.Storage,
	minioConfig config.AppMinio,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		Storage:          storage,
		MinioConfig:      minioConfig,
		Log:              logger,
	}
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("doctorUsecase.ListDoctors error calling DoctorRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("doctorUsecase.ListDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(doctors)),
	)
	return doctors, nil
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.InsertResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	utils.SanitizeCreateDoctorRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error calling DoctorRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDoctorAlreadyExist(nil)
	}

	doctor := &models.Doctor{
		Name:      request.Name,
		Email:     request.Email,
		Specialty: request.Specialty,
		Img:       request.Img,
	}

	if request.Image != "" {
		imageURL, err := uc.uploadPortrait(ctx, request.Email, request.Image)
		if err != nil {
			return nil, err
		}
		doctor.Img = imageURL
	}

	doctor.SetCreatedAtUpdatedAt()
	insertedID, err := uc.DoctorRepository.Insert(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error calling DoctorRepository.Insert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("doctorUsecase.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)
	return &responses.InsertResult{InsertedID: insertedID}, nil
}

// DeleteDoctor reports a zero count for an unknown e-mail instead of failing.
func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, email string) (*responses.DeleteResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	email = utils.SanitizeEmail(email)
	uc.Log.Info("doctorUsecase.DeleteDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	deletedCount, err := uc.DoctorRepository.DeleteByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("doctorUsecase.DeleteDoctor error calling DoctorRepository.DeleteByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.DeleteResult{DeletedCount: deletedCount}, nil
}

func (uc *doctorUsecase) uploadPortrait(ctx context.Context, email, encodedImage string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	data, ext, err := utils.DecodeBase64Image(encodedImage)
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}
	err = utils.ValidateImageFormat(ext, constvars.ImageAllowedDoctorPortraitFormats)
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}
	err = utils.ValidateImageSize(data, uc.MinioConfig.DoctorPortraitMaxUploadSizeInMB)
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}

	fileName := utils.GenerateFileName(doctorPortraitFilePrefix, email, ext)
	imageURL, err := uc.Storage.UploadBase64Image(ctx, data, uc.MinioConfig.BucketName, fileName, ext)
	if err != nil {
		uc.Log.Error("doctorUsecase.uploadPortrait error calling Storage.UploadBase64Image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}
	return imageURL, nil
}
