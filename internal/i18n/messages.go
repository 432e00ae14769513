package i18n

import "schnapsen/internal/domain"

var messagesEN = map[domain.MessageKind]string{
	domain.MsgYouChanged:         "You changed the jack",
	domain.MsgYouClosed:          "You closed the game",
	domain.MsgYourGame:           "👍Congrats, your game!",
	domain.MsgYourTrick:          "Your trick",
	domain.MsgYourTurn:           "Your turn",
	domain.MsgYouLead:            "Your lead",
	domain.MsgYouNotEnough:       "You don't have enough",
	domain.MsgAIChanged:          "AI has changed the jack",
	domain.MsgAIClosed:           "AI has closed",
	domain.MsgAIGame:             "AI wins the game!",
	domain.MsgAITrick:            "AI makes trick",
	domain.MsgAITurn:             "AI playing ... 💭",
	domain.MsgAILeads:            "AI leading ... 💭",
	domain.MsgAINotEnough:        "AI doesn't have enough",
	domain.MsgTrump:              "Trump",
	domain.MsgTitle:              "Schnapsen for two",
	domain.MsgGameBook:           "**Game book**",
	domain.MsgGameBookHeadline:   "  YOU     AI",
	domain.MsgYouWin:             "Wow, your lucky day! You have won the whole lot!",
	domain.MsgYouLost:            "You got the bummerl!",
	domain.MsgInvalidSuit:        "You must give suite",
	domain.MsgMustTrickWithSuit:  "You must trick with suite",
	domain.MsgMustTrickWithTrump: "You must trick with trump",
	domain.MsgNoClose:            "You can't close any more",
	domain.MsgNoChange:           "You can't change any more",
	domain.MsgRedeal:             "REDEAL",
	domain.MsgWelcome:            "Hey dude! Do you want a 'bummerl'?",
	domain.MsgGamesWon:           "Games won (PL/AI): ",
	domain.MsgMatchesWon:         "Matches: ",
	domain.MsgYouMarriage20:      "You declare 20",
	domain.MsgYouMarriage40:      "You declare 40",
	domain.MsgAIMarriage20:       "AI declares 20",
	domain.MsgAIMarriage40:       "AI declares 40",
	domain.MsgShuffle:            "Shuffling",
	domain.MsgAISleep:            "😴!!",
}

var messagesDE = map[domain.MessageKind]string{
	domain.MsgYouChanged:         "Du hast den Buben getauscht",
	domain.MsgYouClosed:          "Du hast zugedreht",
	domain.MsgYourGame:           "👍Gratuliere, dein Spiel!",
	domain.MsgYourTrick:          "Dein Stich",
	domain.MsgYourTurn:           "Du bist dran",
	domain.MsgYouLead:            "Du spielst aus",
	domain.MsgYouNotEnough:       "Du hast nicht genug",
	domain.MsgAIChanged:          "AI hat den Buben getauscht",
	domain.MsgAIClosed:           "AI hat zugedreht",
	domain.MsgAIGame:             "AI gewinnt das Spiel!",
	domain.MsgAITrick:            "AI hat gestochen",
	domain.MsgAITurn:             "AI ist am Spiel ... 💭",
	domain.MsgAILeads:            "AI spielt aus ... 💭",
	domain.MsgAINotEnough:        "AI hat nicht genug",
	domain.MsgTrump:              "Trumpf",
	domain.MsgTitle:              "Schnapsen zu zweit",
	domain.MsgGameBook:           "**Spielebuch**",
	domain.MsgGameBookHeadline:   "  DU      AI",
	domain.MsgYouWin:             "Glückwunsch! Du hast die Partie gewonnen!",
	domain.MsgYouLost:            "Die AI hat dir ein Bummerl angehängt!",
	domain.MsgInvalidSuit:        "Du must Farbe geben",
	domain.MsgMustTrickWithSuit:  "Du must mit Farbe stechen",
	domain.MsgMustTrickWithTrump: "Du must mit Atout stechen",
	domain.MsgNoClose:            "Zudrehen nicht mehr erlaubt",
	domain.MsgNoChange:           "Tauschen nicht mehr erlaubt",
	domain.MsgRedeal:             "MISCHEN",
	domain.MsgWelcome:            "Servas Oida! Hast Lust auf a Bummerl?",
	domain.MsgGamesWon:           "Spiele gewonnen (PL/AI): ",
	domain.MsgMatchesWon:         "Partien: ",
	domain.MsgYouMarriage20:      "Du meldest 20",
	domain.MsgYouMarriage40:      "Du meldest 40",
	domain.MsgAIMarriage20:       "AI meldet 20",
	domain.MsgAIMarriage40:       "AI meldet 40",
	domain.MsgShuffle:            "Mischen",
	domain.MsgAISleep:            "😴!!",
}

var sounds = map[domain.MessageKind]string{
	domain.MsgNone:               "ding",
	domain.MsgYouChanged:         "change",
	domain.MsgAIChanged:          "change",
	domain.MsgYouClosed:          "close",
	domain.MsgAIClosed:           "close",
	domain.MsgYouMarriage20:      "marriage",
	domain.MsgYouMarriage40:      "marriage",
	domain.MsgAIMarriage20:       "marriage",
	domain.MsgAIMarriage40:       "marriage",
	domain.MsgYourGame:           "your_game",
	domain.MsgAIGame:             "ai_game",
	domain.MsgYouWin:             "you_win",
	domain.MsgYouLost:            "you_lost",
	domain.MsgNoClose:            "not_allowed",
	domain.MsgNoChange:           "not_allowed",
	domain.MsgInvalidSuit:        "not_allowed",
	domain.MsgMustTrickWithTrump: "not_allowed",
	domain.MsgMustTrickWithSuit:  "not_allowed",
	domain.MsgWelcome:            "welcome",
	domain.MsgShuffle:            "shuffle",
}
