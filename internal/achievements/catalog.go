package achievements

import "github.com/mrlokans/audaroky/internal/entities"

func wordsAtLeast(n int) func(entities.UserStats) bool {
	return func(s entities.UserStats) bool { return s.WordsTranslated >= n }
}

func booksAtLeast(n int) func(entities.UserStats) bool {
	return func(s entities.UserStats) bool { return s.BooksCompleted >= n }
}

func streakAtLeast(n int) func(entities.UserStats) bool {
	return func(s entities.UserStats) bool { return s.StreakDays >= n }
}

func xpAtLeast(n int) func(entities.UserStats) bool {
	return func(s entities.UserStats) bool { return s.TotalXP >= n }
}

// Catalog returns the achievements in evaluation order.
func Catalog() []entities.Achievement {
	return []entities.Achievement{
		{ID: "first_word", Title: "Первое слово", Description: "Переведи своё первое слово", Icon: "📝", XPReward: 10, Predicate: wordsAtLeast(1)},
		{ID: "word_master_10", Title: "Начинающий переводчик", Description: "Переведи 10 слов", Icon: "📚", XPReward: 25, Predicate: wordsAtLeast(10)},
		{ID: "word_master_50", Title: "Опытный переводчик", Description: "Переведи 50 слов", Icon: "🎓", XPReward: 50, Predicate: wordsAtLeast(50)},
		{ID: "word_master_100", Title: "Мастер слов", Description: "Переведи 100 слов", Icon: "🏆", XPReward: 100, Predicate: wordsAtLeast(100)},
		{ID: "first_book", Title: "Книголюб", Description: "Заверши свою первую книгу", Icon: "📖", XPReward: 50, Predicate: booksAtLeast(1)},
		{ID: "bookworm", Title: "Книжный червь", Description: "Заверши 3 книги", Icon: "🐛", XPReward: 100, Predicate: booksAtLeast(3)},
		{ID: "first_test", Title: "Отличник", Description: "Пройди свой первый тест", Icon: "✅", XPReward: 30, Predicate: func(s entities.UserStats) bool { return s.TestsPassed >= 1 }},
		{ID: "streak_3", Title: "На волне", Description: "Занимайся 3 дня подряд", Icon: "🔥", XPReward: 30, Predicate: streakAtLeast(3)},
		{ID: "streak_7", Title: "Неделя успеха", Description: "Занимайся 7 дней подряд", Icon: "💪", XPReward: 70, Predicate: streakAtLeast(7)},
		{ID: "streak_30", Title: "Легенда", Description: "Занимайся 30 дней подряд", Icon: "👑", XPReward: 300, Predicate: streakAtLeast(30)},
		{ID: "xp_100", Title: "Сотня", Description: "Набери 100 XP", Icon: "💯", XPReward: 20, Predicate: xpAtLeast(100)},
		{ID: "xp_500", Title: "Полтысячи", Description: "Набери 500 XP", Icon: "⭐", XPReward: 50, Predicate: xpAtLeast(500)},
		{ID: "xp_1000", Title: "Тысячник", Description: "Набери 1000 XP", Icon: "🌟", XPReward: 100, Predicate: xpAtLeast(1000)},
	}
}
