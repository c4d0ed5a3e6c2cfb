package hub

import (
	"sync"
	"time"

	"quiz-service/domain"

	"github.com/google/uuid"
)

// liveRoom, tek bir oyunun bellek içi koordinasyon bağlamıdır. Kalıcı
// değildir; ilk bağlanmada tembel oluşturulur, boşaldığında silinir.
type liveRoom struct {
	// mu, oda içi tüm ilerleme durumunu korur: faz, açık soru,
	// zamanlayıcı ve cevap sayımı. Zamanlayıcı tetiklenmesi ile cevap
	// gönderimi yarışabilir; ikisi de bu kilidi alır.
	mu sync.Mutex

	gameID          uuid.UUID
	roomCode        string
	timePerQuestion time.Duration
	basePoints      int

	status domain.GameStatus

	host    *domain.Client
	players map[uuid.UUID]*domain.Client // playerID -> canlı bağlantı

	// Sorular start_game anında bir kez yüklenir; oluşturulduktan sonra
	// değişmezler.
	questions    []domain.Question
	currentIndex int

	// openQuestionID ve questionStartTime tam olarak bir soru açıkken
	// doludur; soru bitince bir sonraki başlamadan önce temizlenir.
	openQuestionID    uuid.UUID
	questionStartTime time.Time

	// Odada aynı anda en fazla bir bekleyen zamanlayıcı olur.
	deadlineTimer Timer

	// answered, açık soruya cevap vermiş oyuncu kimliklerini tutar.
	answered map[uuid.UUID]struct{}
}

func newLiveRoom(game *domain.Game) *liveRoom {
	return &liveRoom{
		gameID:          game.ID,
		roomCode:        game.RoomCode,
		timePerQuestion: time.Duration(game.TimePerQuestion) * time.Second,
		basePoints:      game.PointsPerQuestion,
		status:          game.Status,
		currentIndex:    game.CurrentQuestionIndex,
		players:         make(map[uuid.UUID]*domain.Client),
		answered:        make(map[uuid.UUID]struct{}),
	}
}

func (r *liveRoom) emptyLocked() bool {
	return r.host == nil && len(r.players) == 0
}

// connectedPlayerCountLocked, host hariç bağlı oyuncu sayısıdır.
func (r *liveRoom) connectedPlayerCountLocked() int {
	return len(r.players)
}

// questionOpenLocked, verilen sorunun hâlâ açık olup olmadığını söyler.
// endQuestion'ın idempotenlik guard'ı budur.
func (r *liveRoom) questionOpenLocked(questionID uuid.UUID) bool {
	return r.openQuestionID == questionID && !r.questionStartTime.IsZero()
}

// clearQuestionLocked, açık soru durumunu ve zamanlayıcıyı temizler.
func (r *liveRoom) clearQuestionLocked() {
	r.openQuestionID = uuid.Nil
	r.questionStartTime = time.Time{}
	if r.deadlineTimer != nil {
		r.deadlineTimer.Stop()
		r.deadlineTimer = nil
	}
	r.answered = make(map[uuid.UUID]struct{})
}
