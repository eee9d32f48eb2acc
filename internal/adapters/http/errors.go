package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Poker/internal/app"
	"github.com/dkeye/Poker/internal/domain"
)

// writeError maps business errors to stable status codes. Anything
// unrecognized is an infrastructure failure: logged, surfaced as 500,
// and left for the caller to retry.
func writeError(c *gin.Context, err error) {
	var invalidVote *domain.InvalidVoteError
	switch {
	case errors.As(err, &invalidVote):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          invalidVote.Error(),
			"allowed_values": invalidVote.Deck.Values(),
		})
	case errors.Is(err, app.ErrRoomNotFound),
		errors.Is(err, app.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrVotingClosed),
		errors.Is(err, domain.ErrAlreadyRevealed),
		errors.Is(err, app.ErrRoomFull):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRoomNameEmpty),
		errors.Is(err, domain.ErrRoomNameTooLong),
		errors.Is(err, domain.ErrUserNameEmpty),
		errors.Is(err, domain.ErrUserNameTooLong),
		errors.Is(err, domain.ErrUnknownDeck):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body: " + err.Error()})
}
