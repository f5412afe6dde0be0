// Package quizbank holds pre-authored quizzes served when generated questions
// are unavailable.
package quizbank

import (
	"sort"

	"github.com/mrlokans/audaroky/internal/entities"
)

func q(question string, correct int, options ...string) entities.QuizQuestion {
	return entities.QuizQuestion{Question: question, Options: options, CorrectAnswerIndex: correct}
}

// ForBook returns the quiz authored for bookID.
func ForBook(bookID string) ([]entities.QuizQuestion, bool) {
	bank, ok := books[bookID]
	if !ok {
		return nil, false
	}
	return clone(bank), true
}

// Books lists the ids that have an authored quiz.
func Books() []string {
	ids := make([]string, 0, len(books))
	for id := range books {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Generic returns the general-English quiz used for books without their own.
func Generic() []entities.QuizQuestion {
	return clone(generic)
}

// LevelTest returns the placement quiz for level. Every level currently
// shares the same questions.
func LevelTest(level string) []entities.QuizQuestion {
	return clone(levelTest)
}

func clone(src []entities.QuizQuestion) []entities.QuizQuestion {
	out := make([]entities.QuizQuestion, len(src))
	for i, item := range src {
		item.Options = append([]string(nil), item.Options...)
		out[i] = item
	}
	return out
}

var levelTest = []entities.QuizQuestion{
	q("What is the past tense of 'go'?", 1, "Goed", "Went", "Gone", "Going"),
	q("Which word is a synonym for 'happy'?", 2, "Sad", "Angry", "Joyful", "Tired"),
	q("Complete the sentence: She ___ to the store.", 2, "walking", "walks", "walked", "walker"),
}

var generic = []entities.QuizQuestion{
	q("What does 'once upon a time' mean?", 0, "Давным-давно", "Один раз", "Сейчас", "Никогда"),
	q("What is the past tense of 'go'?", 1, "goed", "went", "gone", "going"),
	q("Choose the correct article: '___ apple'", 1, "A", "An", "The", "No article"),
	q("What does 'beautiful' mean?", 1, "Страшный", "Красивый", "Большой", "Маленький"),
	q("Which is correct?", 1, "He don't like", "He doesn't like", "He not like", "He no like"),
	q("What is the plural of 'child'?", 2, "childs", "childes", "children", "childen"),
	q("Choose the correct word: 'I ___ a book'", 1, "readed", "read", "readen", "reading"),
	q("What does 'happy' mean?", 2, "Грустный", "Злой", "Счастливый", "Усталый"),
	q("Which word is a verb?", 1, "book", "run", "table", "happy"),
	q("What is the opposite of 'big'?", 2, "large", "huge", "small", "tall"),
}

var books = map[string][]entities.QuizQuestion{
	"book-a": {
		q("How old was the narrator when he saw the picture of a boa constrictor?", 1, "Four years old", "Six years old", "Eight years old", "Ten years old"),
		q("What was the book called that had the picture?", 1, "Nature Stories", "True Stories from Nature", "Animal Tales", "Forest Adventures"),
		q("What was the boa constrictor doing in the picture?", 2, "Sleeping", "Swimming", "Swallowing an animal", "Climbing a tree"),
		q("What did the grown-ups think the drawing was?", 2, "A snake", "An elephant", "A hat", "A box"),
		q("How long do boa constrictors sleep for digestion?", 2, "Two months", "Four months", "Six months", "One year"),
		q("Where did the pilot have an accident?", 2, "In the mountains", "In the ocean", "In the Desert of Sahara", "In the forest"),
		q("How many days of drinking water did the pilot have?", 2, "Three days", "Five days", "Eight days", "Ten days"),
		q("What did the strange little voice ask the pilot to draw?", 1, "A flower", "A sheep", "A star", "A house"),
		q("Why was the first sheep drawing rejected?", 2, "It was too big", "It was too small", "It was sick", "It had no ears"),
		q("What was the name of the little prince's planet?", 0, "Asteroid B-612", "Planet X-100", "Star C-45", "Moon D-99"),
	},
	"book-b": {
		q("What is the main character's name?", 2, "Peter", "James", "Oliver", "William"),
		q("Where does the story take place?", 0, "London", "Paris", "New York", "Berlin"),
		q("What does Oliver ask for more of?", 2, "Water", "Bread", "Gruel", "Meat"),
		q("How does Oliver feel in the workhouse?", 1, "Happy", "Hungry", "Excited", "Sleepy"),
		q("What word means 'very hungry'?", 1, "Full", "Starving", "Tired", "Cold"),
		q("Where does Oliver live at the beginning?", 1, "A palace", "A workhouse", "A farm", "A castle"),
		q("What does 'orphan' mean?", 1, "A child with parents", "A child without parents", "A happy child", "A rich child"),
		q("How old is Oliver?", 2, "Five", "Seven", "Nine", "Eleven"),
		q("What is the opposite of 'hungry'?", 1, "Tired", "Full", "Sad", "Angry"),
		q("What does Oliver want from life?", 1, "Money", "A family", "Power", "Fame"),
	},
	"book-c": {
		q("Who wrote 'The Great Gatsby'?", 1, "Ernest Hemingway", "F. Scott Fitzgerald", "Mark Twain", "John Steinbeck"),
		q("Where does Gatsby live?", 1, "East Egg", "West Egg", "New York City", "Chicago"),
		q("What color is often associated with Gatsby's dreams?", 2, "Red", "Blue", "Green", "Yellow"),
		q("Who is the narrator of the story?", 2, "Gatsby", "Daisy", "Nick Carraway", "Tom Buchanan"),
		q("What is Gatsby famous for?", 1, "His books", "His parties", "His cars", "His art"),
		q("What does 'wealthy' mean?", 1, "Poor", "Rich", "Sad", "Young"),
		q("Who is Daisy?", 1, "Gatsby's sister", "Nick's cousin", "Tom's mother", "A maid"),
		q("What decade does the story take place in?", 2, "1900s", "1910s", "1920s", "1930s"),
		q("What is the opposite of 'wealthy'?", 2, "Rich", "Happy", "Poor", "Smart"),
		q("What does Gatsby want?", 2, "More money", "To be president", "To reunite with Daisy", "To travel"),
	},
	"book-d": {
		q("What is the main theme of the story?", 1, "Adventure", "Friendship", "Love", "Mystery"),
		q("Where does the story begin?", 0, "A school", "A forest", "A city", "A beach"),
		q("How many main characters are there?", 2, "One", "Two", "Three", "Four"),
		q("What is the setting of the story?", 1, "Winter", "Summer", "Spring", "Autumn"),
		q("What word means 'very happy'?", 2, "Sad", "Angry", "Joyful", "Tired"),
		q("Who is the protagonist?", 1, "The teacher", "A student", "A parent", "An animal"),
		q("What does 'adventure' mean?", 1, "Boring activity", "Exciting journey", "Sad story", "Long sleep"),
		q("What is the mood of the story?", 1, "Dark", "Happy", "Scary", "Boring"),
		q("What is the opposite of 'beginning'?", 2, "Start", "Middle", "End", "First"),
		q("What lesson does the story teach?", 1, "Be selfish", "Be kind to others", "Be lazy", "Be angry"),
	},
	"book-e": {
		q("What genre is this book?", 2, "Comedy", "Drama", "Mystery", "Romance"),
		q("Who solves the mystery?", 1, "A child", "A detective", "A teacher", "A doctor"),
		q("What is missing in the story?", 1, "A person", "An object", "Money", "A pet"),
		q("Where does most of the action happen?", 0, "A house", "A school", "A park", "A museum"),
		q("What word means 'to look for something'?", 1, "Run", "Search", "Sleep", "Eat"),
		q("What is a 'clue'?", 1, "A type of food", "A hint to solve a mystery", "A kind of animal", "A sort of plant"),
		q("How does the story end?", 1, "Sadly", "The mystery is solved", "Nobody knows", "It continues"),
		q("What does 'investigate' mean?", 1, "To ignore", "To examine carefully", "To run away", "To sleep"),
		q("Who is the main suspect?", 2, "The neighbor", "The friend", "The stranger", "No one"),
		q("What is the opposite of 'guilty'?", 1, "Bad", "Innocent", "Sad", "Happy"),
	},
	"book-f": {
		q("What is the theme of this story?", 1, "War", "Nature", "Technology", "Science"),
		q("What type of book is this?", 0, "Fiction", "Non-fiction", "Poetry", "Drama"),
		q("Where does the story take place?", 2, "A city", "A village", "Nature", "Space"),
		q("What is the main character's goal?", 3, "To survive", "To become rich", "To find love", "To learn"),
		q("What does 'nature' include?", 1, "Only trees", "Animals and plants", "Only water", "Only rocks"),
		q("What season is featured in the story?", 2, "Only winter", "Only summer", "All seasons", "No seasons"),
		q("What is an 'ecosystem'?", 1, "A type of car", "Living things and their environment", "A building", "A game"),
		q("What message does the story give?", 1, "Destroy nature", "Protect nature", "Ignore nature", "Fear nature"),
		q("What does 'environment' mean?", 1, "A house", "Surroundings", "A book", "A person"),
		q("What is the opposite of 'wild'?", 1, "Crazy", "Tame", "Fast", "Slow"),
	},
}
