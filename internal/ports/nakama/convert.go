package nakama

import (
	"errors"
	"fmt"

	"klondike/internal/app"
	"klondike/internal/domain"
	"klondike/internal/ports"
	pb "klondike/proto"

	"google.golang.org/protobuf/proto"
)

var errBadRequest = errors.New("bad request")

// pileToProto converts a pile for the client. Face-down cards carry no id.
func pileToProto(pile []domain.PlacedCard) *pb.Pile {
	out := &pb.Pile{Cards: make([]*pb.Card, 0, len(pile))}
	for _, pc := range pile {
		c := &pb.Card{FaceUp: pc.FaceUp}
		if pc.FaceUp {
			c.Id = pc.Card.ID()
		}
		out.Cards = append(out.Cards, c)
	}
	return out
}

func gameStateToProto(view app.View, wasteSize int) *pb.GameState {
	msg := &pb.GameState{
		GameId:          view.GameID,
		Stock:           pileToProto(view.Table.Pile(domain.StockSlot)),
		Waste:           pileToProto(view.Table.Pile(domain.WasteSlot)),
		Foundations:     make([]*pb.Pile, 0, domain.FoundationCount),
		Tableau:         make([]*pb.Pile, 0, domain.TableauCount),
		WasteSize:       int32(wasteSize),
		Score:           int32(view.Score),
		TimeRemaining:   int32(view.TimeRemaining),
		PassesRemaining: int32(view.PassesRemaining),
		Won:             view.Won,
		CanUndo:         view.CanUndo,
	}
	for _, slot := range domain.FoundationSlots() {
		msg.Foundations = append(msg.Foundations, pileToProto(view.Table.Pile(slot)))
	}
	for _, slot := range domain.TableauSlots() {
		msg.Tableau = append(msg.Tableau, pileToProto(view.Table.Pile(slot)))
	}
	return msg
}

func cardIDs(cards []domain.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID())
	}
	return out
}

// resolveCard turns a card request into a card. A slot request picks the
// slot's top card, which lets clients tap face-down cards they cannot name.
func resolveCard(req *pb.CardRequest, table domain.Snapshot) (domain.Card, error) {
	if req.GetCard() != "" {
		c, err := domain.ParseCardID(req.GetCard())
		if err != nil {
			return domain.Card{}, fmt.Errorf("%w: %v", errBadRequest, err)
		}
		return c, nil
	}
	slot, err := domain.ParseSlotID(req.GetSlot())
	if err != nil {
		return domain.Card{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	pile := table.Pile(slot)
	if len(pile) == 0 {
		return domain.Card{}, fmt.Errorf("%w: %s is empty", errBadRequest, slot)
	}
	return pile[len(pile)-1].Card, nil
}

func decodeCardRequest(data []byte, table domain.Snapshot) (domain.Card, error) {
	req := &pb.CardRequest{}
	if err := proto.Unmarshal(data, req); err != nil {
		return domain.Card{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return resolveCard(req, table)
}

func decodeDropRequest(data []byte) ([]domain.Card, domain.SlotID, error) {
	req := &pb.DropRequest{}
	if err := proto.Unmarshal(data, req); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	cards := make([]domain.Card, 0, len(req.GetCards()))
	for _, id := range req.GetCards() {
		c, err := domain.ParseCardID(id)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", errBadRequest, err)
		}
		cards = append(cards, c)
	}
	target, err := domain.ParseSlotID(req.GetTarget())
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return cards, target, nil
}

// errorCode maps an app error to the stable code sent with OP_CODE_GAME_ERROR.
func errorCode(err error) string {
	switch {
	case errors.Is(err, errBadRequest):
		return "bad_request"
	case errors.Is(err, app.ErrInvalidMove):
		return "invalid_move"
	case errors.Is(err, app.ErrNotDraggable):
		return "not_draggable"
	case errors.Is(err, app.ErrNothingToUndo):
		return "nothing_to_undo"
	case errors.Is(err, app.ErrRedealExhausted):
		return "redeal_exhausted"
	case errors.Is(err, app.ErrStockEmpty):
		return "stock_empty"
	case errors.Is(err, app.ErrStockNotEmpty):
		return "stock_not_empty"
	case errors.Is(err, ports.ErrNoSave):
		return "no_save"
	case errors.Is(err, app.ErrSaveIO):
		return "save_io"
	case errors.Is(err, app.ErrLoadCorruptData):
		return "load_corrupt_data"
	default:
		return "internal"
	}
}
