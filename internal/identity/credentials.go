package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidCredentials reports a form submission with a missing or
	// malformed required field.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAssertion reports an identity assertion that could not be decoded.
	ErrAssertion = errors.New("identity assertion rejected")
)

var validate = validator.New()

// Credentials is one of FormCredentials or AssertionCredentials.
type Credentials interface {
	credentials()
}

// FormCredentials are submitted through the local login/register form. The
// password is required but never checked against anything.
type FormCredentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	// Name is set by the register form; login derives it from Email.
	Name string
}

// AssertionCredentials wrap a token issued by an external login provider.
type AssertionCredentials struct {
	Token string `validate:"required"`
}

func (FormCredentials) credentials()      {}
func (AssertionCredentials) credentials() {}

// assertionClaims is the decoded payload of a provider token.
type assertionClaims struct {
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// NewUser normalizes any credential kind into a User. Every returned user is
// online and identified by its email.
func NewUser(c Credentials) (User, error) {
	switch c := c.(type) {
	case FormCredentials:
		return fromForm(c)
	case AssertionCredentials:
		return fromAssertion(c)
	default:
		return User{}, fmt.Errorf("%w: unsupported credentials %T", ErrInvalidCredentials, c)
	}
}

func fromForm(c FormCredentials) (User, error) {
	c.Email = strings.TrimSpace(c.Email)
	c.Name = strings.TrimSpace(c.Name)
	if err := validate.Struct(c); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	name := c.Name
	if name == "" {
		name, _, _ = strings.Cut(c.Email, "@")
	}
	return User{
		ID:        c.Email,
		Name:      name,
		AvatarURL: AvatarURL(name),
		Email:     c.Email,
		Online:    true,
	}, nil
}

func fromAssertion(c AssertionCredentials) (User, error) {
	if err := validate.Struct(c); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrAssertion, err)
	}

	// Signature verification belongs to the provider exchange; only the
	// payload is read here.
	var claims assertionClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(strings.TrimSpace(c.Token), &claims); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrAssertion, err)
	}
	if claims.Email == "" {
		return User{}, fmt.Errorf("%w: token has no email claim", ErrAssertion)
	}

	return User{
		ID:        claims.Email,
		Name:      claims.Name,
		AvatarURL: claims.Picture,
		Email:     claims.Email,
		Online:    true,
	}, nil
}

// AvatarURL returns the generated avatar for users without a picture.
func AvatarURL(seed string) string {
	return "https://picsum.photos/seed/" + seed + "/200/200"
}
