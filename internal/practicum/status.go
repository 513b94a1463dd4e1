package practicum

import "fmt"

// Verdicts maps a homework status to the sentence sent to the chat.
var Verdicts = map[string]string{
	"approved":  "Работа проверена: ревьюеру всё понравилось. Ура!",
	"reviewing": "Работа взята на проверку ревьюером.",
	"rejected":  "Работа проверена: у ревьюера есть замечания.",
}

// ParseStatus turns one homework record into the chat message about
// its status change.
func ParseStatus(homework any) (string, error) {
	hw, ok := homework.(map[string]any)
	if !ok {
		return "", newError(KindRecordFormat, nil, "homework record is not an object")
	}

	name, ok := hw["homework_name"].(string)
	if !ok {
		return "", newError(KindRecordFormat, nil, `homework record has no "homework_name" field`)
	}

	status, ok := hw["status"].(string)
	if !ok {
		return "", newError(KindRecordFormat, nil, `homework record has no "status" field`)
	}

	verdict, ok := Verdicts[status]
	if !ok {
		return "", newError(KindUnknownStatus, nil, "unknown homework status %q", status)
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}
