package nakama

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"klondike/internal/app"
	"klondike/internal/app/countdown"
	"klondike/internal/config"
	"klondike/internal/ports"
	"klondike/internal/ports/localfile"
	pb "klondike/proto"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	OwnerID   string    `json:"owner_id"`   // The only user allowed in the match
	Joined    bool      `json:"joined"`     // Owner has joined at least once
	Tick      int64     `json:"tick"`       // Current tick of the match
	WasteSize int       `json:"waste_size"` // Waste cards the client fans out
	Game      *app.Game `json:"-"`          // Solitaire game driven by this match

	// Lifetime of the countdown goroutine; cancelled when the match ends.
	ctx    context.Context
	cancel context.CancelFunc
}

func newMatchState(cfg config.GameConfig, ownerID string, saves ports.SaveSlotPort, log *slog.Logger, clock countdown.Clock) (*MatchState, error) {
	game, _, err := app.NewGame(cfg, app.Deps{Saves: saves, Logger: log, Clock: clock})
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &MatchState{
		OwnerID:   ownerID,
		WasteSize: cfg.WasteSize,
		Game:      game,
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

// canJoin admits the owner only.
func (ms *MatchState) canJoin(userID string) (bool, string) {
	if userID != ms.OwnerID {
		return false, "match is private"
	}
	return true, ""
}

func (ms *MatchState) stop() {
	ms.Game.StopTimer()
	ms.cancel()
}

type matchHandler struct {
	cfg   config.GameConfig
	files *localfile.SaveSlot // set when saves go to local files
}

func newMatchHandler(cfg config.GameConfig) (*matchHandler, error) {
	mh := &matchHandler{cfg: cfg}
	if cfg.SaveBackend == config.SaveBackendFile {
		files, err := localfile.NewSaveSlot(cfg.SaveDir)
		if err != nil {
			return nil, err
		}
		mh.files = files
	}
	return mh, nil
}

func (mh *matchHandler) saveSlot(nk runtime.NakamaModule, userID string) (ports.SaveSlotPort, error) {
	if mh.files != nil {
		return mh.files.ForUser(userID)
	}
	return NewStorageSaveSlot(nk, userID)
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	ownerID, _ := params[matchParamsOwner].(string)
	if ownerID == "" {
		logger.Error("MatchInit: Missing owner in match params.")
		return nil, 0, ""
	}

	saves, err := mh.saveSlot(nk, ownerID)
	if err != nil {
		logger.Error("MatchInit: Failed to open save slot for %s: %v", ownerID, err)
		return nil, 0, ""
	}

	gameLog := newSlogLogger(logger.WithField("owner", ownerID), slog.LevelDebug)
	state, err := newMatchState(mh.cfg, ownerID, saves, gameLog, nil)
	if err != nil {
		logger.Error("MatchInit: Failed to start game for %s: %v", ownerID, err)
		return nil, 0, ""
	}

	label := &pb.MatchLabel{
		Game:  matchLabelGame,
		Owner: ownerID,
	}
	labelBytes, err := (&protojson.MarshalOptions{EmitUnpopulated: true}).Marshal(label)
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	logger.Debug("MatchInit: Game %s created for %s.", state.Game.ID(), ownerID)
	return state, MatchTickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}
	allowed, reason := matchState.canJoin(presence.GetUserId())
	if !allowed {
		logger.Warn("MatchJoinAttempt: Rejected %s: %s", presence.GetUserId(), reason)
	}
	return matchState, allowed, reason
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		if p.GetUserId() == matchState.OwnerID {
			mh.ownerJoined(matchState, dispatcher, logger)
		}
	}
	return matchState
}

// ownerJoined starts the countdown on the first join and sends the table.
func (mh *matchHandler) ownerJoined(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if !state.Joined {
		state.Joined = true
		if state.Game.StartTimer(state.ctx) {
			logger.Debug("MatchJoin: Countdown started with %d seconds.", state.Game.TimeRemaining())
		}
	}
	mh.broadcastState(state, dispatcher, logger)
}

// MatchLeave is called when one or more players leave the match. The match
// ends with its owner.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		if p.GetUserId() == matchState.OwnerID {
			logger.Info("MatchLeave: Owner %s left, terminating match.", p.GetUserId())
			matchState.stop()
			return nil
		}
	}
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick
	mh.drainTimer(matchState, dispatcher, logger)

	for _, msg := range messages {
		mh.handleMessage(ctx, matchState, dispatcher, logger, msg.GetUserId(), msg.GetOpCode(), msg.GetData())
	}

	return matchState
}

// drainTimer forwards countdown events that arrived since the last tick.
func (mh *matchHandler) drainTimer(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	for {
		select {
		case ev := <-state.Game.TimerEvents():
			switch ev.Kind {
			case countdown.EventTick:
				mh.send(dispatcher, logger, pb.OpCode_OP_CODE_TIMER_TICK, &pb.TimerTickEvent{Remaining: int32(ev.Remaining)})
			case countdown.EventTimeout:
				logger.Info("MatchLoop: Game %s ran out of time.", state.Game.ID())
				mh.send(dispatcher, logger, pb.OpCode_OP_CODE_TIMEOUT, &pb.TimeoutEvent{})
			}
		default:
			return
		}
	}
}

func (mh *matchHandler) handleMessage(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, opCode int64, data []byte) {
	if userID != state.OwnerID {
		logger.Warn("MatchLoop: Ignoring op %d from non-owner %s", opCode, userID)
		return
	}

	game := state.Game
	var (
		events []app.Event
		err    error
	)

	switch pb.OpCode(opCode) {
	case pb.OpCode_OP_CODE_DRAW:
		events, err = game.Draw()
	case pb.OpCode_OP_CODE_RESTOCK:
		events, err = game.Restock()
	case pb.OpCode_OP_CODE_DRAG:
		mh.handleDrag(state, dispatcher, logger, data)
		return
	case pb.OpCode_OP_CODE_DROP:
		cards, target, decodeErr := decodeDropRequest(data)
		if err = decodeErr; err == nil {
			events, err = game.Drop(cards, target)
		}
	case pb.OpCode_OP_CODE_TAP, pb.OpCode_OP_CODE_DOUBLE_TAP:
		c, decodeErr := decodeCardRequest(data, game.View().Table)
		if err = decodeErr; err == nil {
			if pb.OpCode(opCode) == pb.OpCode_OP_CODE_TAP {
				events, err = game.Tap(c)
			} else {
				events, err = game.DoubleTap(c)
			}
		}
	case pb.OpCode_OP_CODE_UNDO:
		events, err = game.Undo()
	case pb.OpCode_OP_CODE_RESTART:
		events, err = game.Restart(state.ctx)
		if err == nil && state.Joined {
			game.StartTimer(state.ctx)
		}
	case pb.OpCode_OP_CODE_SAVE:
		events, err = game.Save(ctx)
	case pb.OpCode_OP_CODE_LOAD:
		events, err = game.Load(ctx)
		// Loading an unfinished game after a win resumes the stopped countdown.
		if err == nil && state.Joined && game.StartTimer(state.ctx) {
			logger.Debug("MatchLoop: Countdown resumed with %d seconds.", game.TimeRemaining())
		}
	default:
		logger.Warn("MatchLoop: Unknown opcode received: %d", opCode)
		err = fmt.Errorf("%w: unknown op code %d", errBadRequest, opCode)
	}

	if err != nil {
		logger.Debug("MatchLoop: Op %d rejected: %v", opCode, err)
		mh.sendError(dispatcher, logger, err)
		return
	}
	if len(events) == 0 {
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(dispatcher, logger, ev)
	}
	mh.broadcastState(state, dispatcher, logger)
}

func (mh *matchHandler) handleDrag(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, data []byte) {
	c, err := decodeCardRequest(data, state.Game.View().Table)
	if err != nil {
		mh.sendError(dispatcher, logger, err)
		return
	}
	pile, err := state.Game.Drag(c)
	if err != nil {
		mh.sendError(dispatcher, logger, err)
		return
	}
	mh.send(dispatcher, logger, pb.OpCode_OP_CODE_DRAGGABLE, &pb.DraggablePile{Cards: cardIDs(pile)})
}

// broadcastEvent sends the one-shot signals; every other event is covered by
// the state broadcast that follows it.
func (mh *matchHandler) broadcastEvent(dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	switch ev.Kind {
	case app.EventGameWon:
		p := ev.Payload.(app.GameWonPayload)
		logger.Info("Event: game_won (score=%d, bonus=%d)", p.Score, p.Bonus)
		mh.send(dispatcher, logger, pb.OpCode_OP_CODE_GAME_WON, &pb.GameWonEvent{Score: int32(p.Score), Bonus: int32(p.Bonus)})
	case app.EventMoved:
		p := ev.Payload.(app.MovedPayload)
		logger.Debug("Event: moved %d card(s) %s -> %s", len(p.Cards), p.From, p.To)
	default:
		logger.Debug("Event: %s", ev.Kind)
	}
}

func (mh *matchHandler) broadcastState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	mh.send(dispatcher, logger, pb.OpCode_OP_CODE_STATE, gameStateToProto(state.Game.View(), state.WasteSize))
}

// sendError reports a rejected request to the owner.
func (mh *matchHandler) sendError(dispatcher runtime.MatchDispatcher, logger runtime.Logger, err error) {
	mh.send(dispatcher, logger, pb.OpCode_OP_CODE_GAME_ERROR, &pb.GameErrorEvent{Code: errorCode(err), Message: err.Error()})
}

// send broadcasts payload. The owner is the only presence, so a broadcast
// reaches exactly them.
func (mh *matchHandler) send(dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode pb.OpCode, payload proto.Message) {
	bytes, err := proto.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal %v: %v", opCode, err)
		return
	}
	if err := dispatcher.BroadcastMessage(int64(opCode), bytes, nil, nil, true); err != nil {
		logger.Error("Failed to send %v: %v", opCode, err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	if matchState, ok := state.(*MatchState); ok {
		matchState.stop()
	}
	logger.Debug("MatchTerminate: Match terminated with %d grace seconds.", graceSeconds)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
