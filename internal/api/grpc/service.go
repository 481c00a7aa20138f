package grpc

import (
	"context"

	"github.com/m-zajac/ghroast/internal/app"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// AppService can roast github users.
type AppService interface {
	Roast(ctx context.Context, login string) (*app.Roast, error)
}

// Service implements RoasterServer, acting as a direct proxy to AppService.
type Service struct {
	appService AppService
}

var _ RoasterServer = &Service{}

// NewService returns new Service instance
func NewService(appService AppService) *Service {
	return &Service{
		appService: appService,
	}
}

// Roast calls service and returns reply.
func (s *Service) Roast(ctx context.Context, r *wrapperspb.StringValue) (*structpb.Struct, error) {
	roast, err := s.appService.Roast(ctx, r.GetValue())
	if err != nil {
		return nil, status.Error(errorCode(err), err.Error())
	}

	var language interface{}
	if roast.HasLanguage {
		language = roast.MostUsedLanguage
	}
	reply, err := structpb.NewStruct(map[string]interface{}{
		"name":               roast.Profile.Name,
		"login":              roast.Profile.Login,
		"avatarUrl":          roast.Profile.AvatarURL,
		"htmlUrl":            roast.Profile.HTMLURL,
		"totalContributions": roast.TotalContributions,
		"totalStars":         roast.TotalStars,
		"mostUsedLanguage":   language,
		"roast":              roast.Text,
		"totalRoasts":        roast.TotalRoasts,
	})
	if err != nil {
		return nil, errors.Wrap(err, "building reply")
	}

	return reply, nil
}

func errorCode(err error) codes.Code {
	switch {
	case app.IsInvalidRequestError(err):
		return codes.InvalidArgument
	case app.IsTooManyRequestsError(err):
		return codes.ResourceExhausted
	case app.IsTimeoutError(err):
		return codes.DeadlineExceeded
	case app.IsUpstreamFetchError(err), app.IsGraphQLError(err), app.IsGenerationError(err):
		return codes.Unavailable
	default:
		return codes.Internal
	}
}
