package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-client-manager/internal/lib/smtp"
	"github.com/magabrotheeeer/gym-client-manager/internal/models"
)

type TransportMock struct{ mock.Mock }

func (m *TransportMock) Connect() (smtp.Client, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(smtp.Client), args.Error(1)
}

func (m *TransportMock) GetSMTPUser() string {
	return m.Called().String(0)
}

type ClientMock struct {
	mock.Mock
	buf bytes.Buffer
}

func (m *ClientMock) Mail(from string) error { return m.Called(from).Error(0) }
func (m *ClientMock) Rcpt(to string) error   { return m.Called(to).Error(0) }
func (m *ClientMock) Data() (io.WriteCloser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.WriteCloser), args.Error(1)
}
func (m *ClientMock) Quit() error  { return m.Called().Error(0) }
func (m *ClientMock) Close() error { return m.Called().Error(0) }

type nopWriteCloser struct{ *bytes.Buffer }

func (nopWriteCloser) Close() error { return nil }

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func marshalMessage(t *testing.T, msg models.ExpiringClientInfo) []byte {
	body, err := json.Marshal(msg)
	require.NoError(t, err)
	return body
}

func TestSendExpiringClientEmail(t *testing.T) {
	message := models.ExpiringClientInfo{
		InstructorEmail:    "coach@example.com",
		InstructorUsername: "coach",
		ClientName:         "Joao",
		FinishDate:         "05/09/2026",
		DaysLeft:           5,
	}

	transport := new(TransportMock)
	client := new(ClientMock)
	buf := &bytes.Buffer{}

	transport.On("GetSMTPUser").Return("noreply@example.com")
	transport.On("Connect").Return(client, nil).Once()
	client.On("Mail", "noreply@example.com").Return(nil).Once()
	client.On("Rcpt", "coach@example.com").Return(nil).Once()
	client.On("Data").Return(nopWriteCloser{buf}, nil).Once()
	client.On("Quit").Return(nil).Once()
	client.On("Close").Return(nil).Once()

	svc := NewSenderService(transport, newNoopLogger())
	err := svc.SendExpiringClientEmail(marshalMessage(t, message))
	require.NoError(t, err)

	sent := buf.String()
	assert.Contains(t, sent, "To: coach@example.com")
	assert.Contains(t, sent, "Joao")
	assert.Contains(t, sent, "05/09/2026")
	transport.AssertExpectations(t)
	client.AssertExpectations(t)
}

func TestSendExpiringClientEmailBadPayload(t *testing.T) {
	transport := new(TransportMock)
	svc := NewSenderService(transport, newNoopLogger())

	err := svc.SendExpiringClientEmail([]byte("not-json"))
	assert.Error(t, err)
	transport.AssertNotCalled(t, "Connect")
}

func TestSendExpiringClientEmailConnectError(t *testing.T) {
	message := models.ExpiringClientInfo{InstructorEmail: "coach@example.com"}

	transport := new(TransportMock)
	transport.On("GetSMTPUser").Return("noreply@example.com")
	transport.On("Connect").Return(nil, errors.New("dial tcp: connection refused")).Once()

	svc := NewSenderService(transport, newNoopLogger())
	err := svc.SendExpiringClientEmail(marshalMessage(t, message))
	assert.Error(t, err)
}

func TestSendExpiringClientEmailRcptError(t *testing.T) {
	message := models.ExpiringClientInfo{InstructorEmail: "bad@example.com"}

	transport := new(TransportMock)
	client := new(ClientMock)
	transport.On("GetSMTPUser").Return("noreply@example.com")
	transport.On("Connect").Return(client, nil).Once()
	client.On("Mail", "noreply@example.com").Return(nil).Once()
	client.On("Rcpt", "bad@example.com").Return(errors.New("550 no such user")).Once()
	client.On("Close").Return(nil).Once()

	svc := NewSenderService(transport, newNoopLogger())
	err := svc.SendExpiringClientEmail(marshalMessage(t, message))
	assert.Error(t, err)
	client.AssertNotCalled(t, "Data")
}
