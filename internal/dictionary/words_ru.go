package dictionary

var russianWords = map[string]string{
	"hello":     "привет",
	"book":      "книга",
	"cat":       "кот",
	"dog":       "собака",
	"house":     "дом",
	"sun":       "солнце",
	"water":     "вода",
	"friend":    "друг",
	"school":    "школа",
	"happy":     "счастливый",
	"big":       "большой",
	"small":     "маленький",
	"good":      "хороший",
	"bad":       "плохой",
	"love":      "любовь",
	"time":      "время",
	"apple":     "яблоко",
	"tree":      "дерево",
	"city":      "город",
	"street":    "улица",
	"car":       "машина",
	"mother":    "мать",
	"father":    "отец",
	"sister":    "сестра",
	"brother":   "брат",
	"child":     "ребёнок",
	"day":       "день",
	"night":     "ночь",
	"morning":   "утро",
	"evening":   "вечер",
	"year":      "год",
	"word":      "слово",
	"language":  "язык",
	"teacher":   "учитель",
	"student":   "студент",
	"door":      "дверь",
	"window":    "окно",
	"table":     "стол",
	"chair":     "стул",
	"bread":     "хлеб",
	"milk":      "молоко",
	"tea":       "чай",
	"coffee":    "кофе",
	"money":     "деньги",
	"work":      "работа",
	"road":      "дорога",
	"forest":    "лес",
	"river":     "река",
	"sea":       "море",
	"mountain":  "гора",
	"sky":       "небо",
	"rain":      "дождь",
	"snow":      "снег",
	"winter":    "зима",
	"summer":    "лето",
	"red":       "красный",
	"blue":      "синий",
	"green":     "зелёный",
	"white":     "белый",
	"black":     "чёрный",
	"old":       "старый",
	"new":       "новый",
	"young":     "молодой",
	"beautiful": "красивый",
	"fast":      "быстрый",
	"slow":      "медленный",
	"read":      "читать",
	"write":     "писать",
	"speak":     "говорить",
	"go":        "идти",
	"see":       "видеть",
	"know":      "знать",
	"think":     "думать",
	"eat":       "есть",
	"drink":     "пить",
	"sleep":     "спать",
	"yes":       "да",
	"no":        "нет",
	"thank you": "спасибо",
	"please":    "пожалуйста",
}
