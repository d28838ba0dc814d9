// internal/intents/dispatcher_test.go
package intents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "deploybot/internal/common/errors"
	"deploybot/internal/common/logger"
	"deploybot/internal/lex"
)

type stubHandler struct {
	calls    int
	response *lex.Response
}

func (s *stubHandler) Execute(_ context.Context, _ *lex.Event) (*lex.Response, error) {
	s.calls++
	return s.response, nil
}

func eventWithIntent(name string) *lex.Event {
	return &lex.Event{
		UserID: "user-1",
		Bot:    lex.Bot{Name: "DeployBot"},
		CurrentIntent: lex.CurrentIntent{
			Name:  name,
			Slots: map[string]*string{},
		},
	}
}

func TestDispatch_RoutesToHandlers(t *testing.T) {
	deployResp := lex.Close(nil, lex.StateFulfilled, lex.PlainText("deploy"))
	prodResp := lex.Close(nil, lex.StateFulfilled, lex.PlainText("prod"))

	deploy := &stubHandler{response: deployResp}
	deployToProd := &stubHandler{response: prodResp}
	d := NewDispatcher(deploy, deployToProd, logger.NewTestLogger(t))

	resp, err := d.Dispatch(context.Background(), eventWithIntent("DeploymentIntent"))
	require.NoError(t, err)
	assert.Same(t, deployResp, resp)
	assert.Equal(t, 1, deploy.calls)
	assert.Equal(t, 0, deployToProd.calls)

	// The prod confirmation path is reachable and receives the event.
	resp, err = d.Dispatch(context.Background(), eventWithIntent("Deploytoprodintent"))
	require.NoError(t, err)
	assert.Same(t, prodResp, resp)
	assert.Equal(t, 1, deployToProd.calls)
}

func TestDispatch_UnsupportedIntent(t *testing.T) {
	tests := []string{"CancelIntent", "MakeAppointment", "", "deploymentintent"}

	for _, name := range tests {
		t.Run("intent "+name, func(t *testing.T) {
			d := NewDispatcher(&stubHandler{}, &stubHandler{}, logger.NewTestLogger(t))

			resp, err := d.Dispatch(context.Background(), eventWithIntent(name))
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Equal(t, apperrors.ErrCodeUnsupportedIntent, apperrors.CodeOf(err))
			assert.False(t, apperrors.IsRetryable(err))
			assert.Contains(t, err.Error(), "not supported")
		})
	}
}
