package middleware

import (
	"sync"

	"github.com/google/uuid"
)

// Ensure, that tokenValidatorMock does implement tokenValidator.
// If this is not the case, regenerate this file with moq.
var _ tokenValidator = &tokenValidatorMock{}

// tokenValidatorMock is a mock implementation of tokenValidator.
type tokenValidatorMock struct {
	// ValidateAccessTokenFunc mocks the ValidateAccessToken method.
	ValidateAccessTokenFunc func(token string) (uuid.UUID, error)

	// calls tracks calls to the methods.
	calls struct {
		// ValidateAccessToken holds details about calls to the ValidateAccessToken method.
		ValidateAccessToken []struct {
			// Token is the token argument value.
			Token string
		}
	}
	lockValidateAccessToken sync.RWMutex
}

// ValidateAccessToken calls ValidateAccessTokenFunc.
func (mock *tokenValidatorMock) ValidateAccessToken(token string) (uuid.UUID, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("tokenValidatorMock.ValidateAccessTokenFunc: method is nil but tokenValidator.ValidateAccessToken was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

// ValidateAccessTokenCalls gets all the calls that were made to ValidateAccessToken.
func (mock *tokenValidatorMock) ValidateAccessTokenCalls() []struct {
	Token string
} {
	mock.lockValidateAccessToken.RLock()
	defer mock.lockValidateAccessToken.RUnlock()
	return mock.calls.ValidateAccessToken
}
