package credentials_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hivegrid/hivectl/internal/credentials"
	mock_hivectl "github.com/hivegrid/hivectl/tests/mock"
	promptUtils "github.com/hivegrid/hivectl/utils/prompt"
)

func TestConsolePrompterUsername(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		inputErr error
		expected string
		wantErr  error
	}{
		{name: "plain username", input: "bob", expected: "bob"},
		{name: "empty means anonymous", input: "", expected: ""},
		{name: "interrupted", inputErr: promptUtils.ErrInterrupted, wantErr: promptUtils.ErrInterrupted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUI := mock_hivectl.NewMockUIPrompter(ctrl)
			mockUI.EXPECT().PromptForInput(gomock.Any(), "").Return(tt.input, tt.inputErr)

			prompter := credentials.NewConsolePrompter(mockUI)
			username, err := prompter.Username("srv")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, username)
		})
	}
}

func TestConsolePrompterPassword(t *testing.T) {
	t.Run("submit with store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUI := mock_hivectl.NewMockUIPrompter(ctrl)
		mockUI.EXPECT().PromptForSecret(gomock.Any()).Return("pw", nil)
		mockUI.EXPECT().PromptForConfirmation(gomock.Any()).Return(true)

		prompter := credentials.NewConsolePrompter(mockUI)
		result, err := prompter.Password("srv", "bob")
		require.NoError(t, err)
		assert.Equal(t, credentials.PasswordResult{Value: "pw", Store: true}, result)
	})

	t.Run("submit without store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUI := mock_hivectl.NewMockUIPrompter(ctrl)
		mockUI.EXPECT().PromptForSecret(gomock.Any()).Return("pw", nil)
		mockUI.EXPECT().PromptForConfirmation(gomock.Any()).Return(false)

		prompter := credentials.NewConsolePrompter(mockUI)
		result, err := prompter.Password("srv", "bob")
		require.NoError(t, err)
		assert.Equal(t, credentials.PasswordResult{Value: "pw", Store: false}, result)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUI := mock_hivectl.NewMockUIPrompter(ctrl)
		mockUI.EXPECT().PromptForSecret(gomock.Any()).Return("", promptUtils.ErrInterrupted)

		prompter := credentials.NewConsolePrompter(mockUI)
		_, err := prompter.Password("srv", "bob")
		assert.ErrorIs(t, err, promptUtils.ErrInterrupted)
	})

	t.Run("empty password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUI := mock_hivectl.NewMockUIPrompter(ctrl)
		mockUI.EXPECT().PromptForSecret(gomock.Any()).Return("", nil)

		prompter := credentials.NewConsolePrompter(mockUI)
		_, err := prompter.Password("srv", "bob")
		assert.ErrorIs(t, err, credentials.ErrNoPassword)
	})
}
