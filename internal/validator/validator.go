package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"curateurs-backoffice/internal/domain"
)

const (
	msgRealURL = "You must enter a real url"
)

var (
	httpURLRegex    = regexp.MustCompile(`^https?://`)
	slugRegex       = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	permissionRegex = regexp.MustCompile(`^[a-z]+:[a-z]+$`)

	errInvalidRole    = validation.NewError("validation_invalid_role", "invalid_role")
	errInvalidURLType = validation.NewError("validation_invalid_url_type", "Invalid url type")
)

// Validator validates the typed request payloads at the service boundary.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

func titleRules() []validation.Rule {
	return []validation.Rule{
		validation.RuneLength(10, 0).Error("Title must be at least 10 characters"),
		validation.RuneLength(0, 100).Error("Title must be at most 100 characters"),
	}
}

func introductionRules() []validation.Rule {
	return []validation.Rule{
		validation.RuneLength(10, 0).Error("Introduction must be at least 10 characters"),
		validation.RuneLength(0, 500).Error("Introduction must be at most 500 characters"),
	}
}

func mainRules() []validation.Rule {
	return []validation.Rule{
		validation.RuneLength(200, 0).Error("Main content must be at least 200 characters"),
	}
}

func urlRules() []validation.Rule {
	return []validation.Rule{
		is.URL.Error(msgRealURL),
		validation.Match(httpURLRegex).Error(msgRealURL),
	}
}

// ValidateCreateArticle validates a new article payload.
func (v *Validator) ValidateCreateArticle(r *domain.CreateArticleRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			append([]validation.Rule{validation.Required.Error("Title is required")}, titleRules()...)...),
		validation.Field(&r.Introduction,
			append([]validation.Rule{validation.Required.Error("Introduction is required")}, introductionRules()...)...),
		validation.Field(&r.Main,
			append([]validation.Rule{validation.Required.Error("Main content is required")}, mainRules()...)...),
		validation.Field(&r.MainAudioURL,
			append([]validation.Rule{validation.Required.Error(msgRealURL)}, urlRules()...)...),
		validation.Field(&r.URLToMainIllustration,
			append([]validation.Rule{validation.Required.Error(msgRealURL)}, urlRules()...)...),
		validation.Field(&r.URLs, validation.Each(validation.By(urlItemRule))),
	)
}

// ValidateUpdateArticle validates the fields present in an update payload.
// The serialized urls are checked separately once decoded, see ValidateURLItems.
func (v *Validator) ValidateUpdateArticle(r *domain.UpdateArticleRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Slug,
			validation.NilOrNotEmpty.Error("Slug cannot be empty"),
			validation.Match(slugRegex).Error("Slug must contain only lowercase letters, digits and hyphens"),
		),
		validation.Field(&r.Title,
			append([]validation.Rule{validation.NilOrNotEmpty.Error("Title cannot be empty")}, titleRules()...)...),
		validation.Field(&r.Introduction,
			append([]validation.Rule{validation.NilOrNotEmpty.Error("Introduction cannot be empty")}, introductionRules()...)...),
		validation.Field(&r.Main,
			append([]validation.Rule{validation.NilOrNotEmpty.Error("Main content cannot be empty")}, mainRules()...)...),
		validation.Field(&r.MainAudioURL,
			append([]validation.Rule{validation.NilOrNotEmpty.Error(msgRealURL)}, urlRules()...)...),
		validation.Field(&r.URLToMainIllustration,
			append([]validation.Rule{validation.NilOrNotEmpty.Error(msgRealURL)}, urlRules()...)...),
	)
}

// ValidateURLItems validates a decoded url list.
func (v *Validator) ValidateURLItems(items []domain.URLItem) error {
	return validation.Validate(items, validation.Each(validation.By(urlItemRule)))
}

func urlItemRule(value interface{}) error {
	item, ok := value.(domain.URLItem)
	if !ok {
		return nil
	}
	return validation.ValidateStruct(&item,
		validation.Field(&item.Type,
			validation.Required.Error("Url type is required"),
			validation.By(urlTypeRule),
		),
		validation.Field(&item.URL,
			append([]validation.Rule{validation.Required.Error(msgRealURL)}, urlRules()...)...),
		validation.Field(&item.Credits,
			validation.RuneLength(0, 100).Error("Credits must be at most 100 characters"),
		),
	)
}

func urlTypeRule(value interface{}) error {
	t, _ := value.(domain.URLType)
	if t == "" || domain.IsValidURLType(t) {
		return nil
	}
	return errInvalidURLType
}

// roleRule accepts an empty role; Required decides whether one is needed.
func roleRule(value interface{}) error {
	r, _ := value.(domain.Role)
	if r == "" || domain.IsValidRole(r) {
		return nil
	}
	return errInvalidRole
}

// ValidateCreateUser validates a new user payload. An empty role is allowed and
// later defaults to contributor.
func (v *Validator) ValidateCreateUser(r *domain.CreateUserRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name_required"),
			validation.RuneLength(0, 100).Error("name_too_long"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email_required"),
			is.EmailFormat.Error("invalid_email_format"),
		),
		validation.Field(&r.Role,
			validation.By(roleRule),
		),
		validation.Field(&r.Permissions,
			validation.Each(validation.Match(permissionRegex).Error("invalid_permission")),
		),
		validation.Field(&r.Password,
			validation.RuneLength(8, 128).Error("password_length"),
		),
		validation.Field(&r.Image, urlRules()...),
	)
}

// ValidateUpdateUser validates a user replacement payload.
func (v *Validator) ValidateUpdateUser(r *domain.UpdateUserRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID,
			validation.Required.Error("id_required"),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name_required"),
			validation.RuneLength(0, 100).Error("name_too_long"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email_required"),
			is.EmailFormat.Error("invalid_email_format"),
		),
		validation.Field(&r.Role,
			validation.Required.Error("role_required"),
			validation.By(roleRule),
		),
		validation.Field(&r.Permissions,
			validation.Each(validation.Match(permissionRegex).Error("invalid_permission")),
		),
	)
}
