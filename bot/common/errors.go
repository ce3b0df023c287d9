package common

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// ErrNotAdmin is returned when a non-administrator invokes an administrator command
var ErrNotAdmin = errors.New("you need administrator permissions to use this command")

// BotError represents a structured error with user-facing and internal messages
type BotError struct {
	UserMessage string // Message shown to Discord user
	LogMessage  string // Internal message for logging
	Err         error  // Underlying error
}

// Error implements the error interface
func (e *BotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.LogMessage, e.Err)
	}
	return e.LogMessage
}

// Unwrap returns the underlying error
func (e *BotError) Unwrap() error {
	return e.Err
}

// NewUserError creates an error for user-caused issues
func NewUserError(userMessage string, logMessage string) *BotError {
	return &BotError{
		UserMessage: userMessage,
		LogMessage:  logMessage,
	}
}

// NewSystemError creates an error for system issues. The underlying error is shown to the user.
func NewSystemError(err error, logMessage string) *BotError {
	return &BotError{
		UserMessage: err.Error(),
		LogMessage:  logMessage,
		Err:         err,
	}
}

// RespondWithError sends "Error: <message>" as an ephemeral interaction response
func RespondWithError(ctx context.Context, p Platform, i *discordgo.InteractionCreate, message string) {
	RespondWithMessage(ctx, p, i, fmt.Sprintf("Error: %s", message), true)
}

// HandleError logs err and reports it to the invoker
func HandleError(ctx context.Context, p Platform, i *discordgo.InteractionCreate, err error) {
	fields := log.Fields{
		"guild_id": i.GuildID,
		"user_id":  InteractionUserID(i),
		"error":    err.Error(),
	}
	if i.Type == discordgo.InteractionApplicationCommand {
		fields["command"] = i.ApplicationCommandData().Name
	}

	var botErr *BotError
	if errors.As(err, &botErr) {
		log.WithFields(fields).Error(botErr.LogMessage)
		RespondWithError(ctx, p, i, botErr.UserMessage)
		return
	}

	log.WithFields(fields).Error("Unexpected error in bot command")
	RespondWithError(ctx, p, i, err.Error())
}
