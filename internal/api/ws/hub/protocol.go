package hub

import (
	"encoding/json"
	"fmt"

	"quiz-service/domain"

	"github.com/go-playground/validator/v10"
)

// İstemciden gelen mesaj tipleri
const (
	MsgJoinGame     = "join_game"
	MsgHostGame     = "host_game"
	MsgStartGame    = "start_game"
	MsgNextQuestion = "next_question"
	MsgSubmitAnswer = "submit_answer"
	MsgPing         = "ping"
)

// Sunucudan istemciye giden mesaj tipleri
const (
	MsgConnectionEstablished = "connection_established"
	MsgJoinedGame            = "joined_game"
	MsgHostConnected         = "host_connected"
	MsgGameState             = "game_state"
	MsgQuestionStarted       = "question_started"
	MsgAnswerSubmitted       = "answer_submitted"
	MsgQuestionEnded         = "question_ended"
	MsgGameCompleted         = "game_completed"
	MsgError                 = "error"
	MsgPong                  = "pong"
)

type Message struct {
	Type    string      `json:"type"`
	Content interface{} `json:"content,omitempty"`
}

// Envelope, gelen ham mesajın zarfıdır. Content, tipe göre ayrı ayrı
// çözülüp doğrulanır; tanınmayan ya da bozuk mesajlar dispatch edilmez.
type Envelope struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content"`
}

type JoinGameContent struct {
	RoomCode string `json:"room_code" validate:"required,len=6"`
	PlayerID string `json:"player_id" validate:"required,uuid"`
}

type HostGameContent struct {
	GameID string `json:"game_id" validate:"required,uuid"`
	HostID string `json:"host_id" validate:"required,uuid"`
}

type StartGameContent struct {
	RoomCode string `json:"room_code" validate:"required,len=6"`
}

type NextQuestionContent struct {
	RoomCode string `json:"room_code" validate:"required,len=6"`
}

type SubmitAnswerContent struct {
	QuestionID    string `json:"question_id" validate:"required,uuid"`
	AnswerIndex   *int   `json:"answer_index" validate:"required,min=0"`
	AnswerIndices []int  `json:"answer_indices,omitempty" validate:"omitempty,dive,min=0"`
}

// PublicQuestion, doğru cevap bilgisi olmadan yayınlanan soru görünümüdür.
type PublicQuestion struct {
	ID            string   `json:"id"`
	QuestionText  string   `json:"question_text"`
	QuestionType  string   `json:"question_type"`
	Answers       []string `json:"answers"`
	QuestionOrder int      `json:"question_order"`
}

// RevealedQuestion, soru kapandıktan sonra doğru cevapla birlikte yayınlanır.
type RevealedQuestion struct {
	PublicQuestion
	CorrectAnswerIndex   int   `json:"correct_answer_index"`
	CorrectAnswerIndices []int `json:"correct_answer_indices,omitempty"`
}

type JoinedGameContent struct {
	Game     *domain.Game    `json:"game"`
	Players  []domain.Player `json:"players"`
	PlayerID string          `json:"player_id"`
}

type HostConnectedContent struct {
	Game *domain.Game `json:"game"`
}

type GameStateContent struct {
	Game    *domain.Game      `json:"game"`
	Players []domain.Player   `json:"players"`
	Status  domain.GameStatus `json:"status"`
}

type QuestionStartedContent struct {
	Question       PublicQuestion `json:"question"`
	TimeLimitMs    int64          `json:"time_limit_ms"`
	QuestionIndex  int            `json:"question_index"`
	TotalQuestions int            `json:"total_questions"`
}

// AnswerSubmittedContent sadece cevabı gönderen oyuncuya iletilir.
type AnswerSubmittedContent struct {
	IsCorrect    bool  `json:"is_correct"`
	PointsEarned int   `json:"points_earned"`
	TimeToAnswer int64 `json:"time_to_answer"`
}

type QuestionEndedContent struct {
	Question RevealedQuestion `json:"question"`
	// AnswerBreakdown[i], i. seçeneğe verilen cevap sayısıdır.
	AnswerBreakdown []int           `json:"answer_breakdown"`
	Players         []domain.Player `json:"players"`
}

var validate = validator.New()

// DecodeEnvelope, ham baytları zarfa çözer. Geçersiz JSON ya da boş tip
// protokol hatasıdır.
func DecodeEnvelope(raw []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("malformed message: %w", err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("malformed message: missing type")
	}
	return &env, nil
}

// decodeContent, zarf içeriğini hedef yapıya çözüp doğrular.
func decodeContent[T any](env *Envelope) (*T, error) {
	var content T
	if len(env.Content) > 0 {
		if err := json.Unmarshal(env.Content, &content); err != nil {
			return nil, fmt.Errorf("malformed %s content: %w", env.Type, err)
		}
	}
	if err := validate.Struct(&content); err != nil {
		return nil, fmt.Errorf("invalid %s content: %w", env.Type, err)
	}
	return &content, nil
}

func publicQuestion(q *domain.Question) PublicQuestion {
	return PublicQuestion{
		ID:            q.ID.String(),
		QuestionText:  q.QuestionText,
		QuestionType:  string(q.QuestionType),
		Answers:       q.Answers,
		QuestionOrder: q.QuestionOrder,
	}
}

func revealedQuestion(q *domain.Question) RevealedQuestion {
	return RevealedQuestion{
		PublicQuestion:       publicQuestion(q),
		CorrectAnswerIndex:   q.CorrectAnswerIndex,
		CorrectAnswerIndices: q.CorrectAnswerIndices,
	}
}
