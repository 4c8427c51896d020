package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionCountry  = "country"
	actionBookmark = "bm"
	actionPage     = "page"
	actionRegion   = "region"
	actionQuiz     = "quiz"
	actionSettings = "settings"
	actionReset    = "reset"
)

// Quiz sub-actions.
const (
	quizAnswer  = "a"
	quizNext    = "n"
	quizPrev    = "p"
	quizFinish  = "f"
	quizRestart = "r"
	quizClose   = "c"
	quizStart   = "s"
)

// Settings sub-actions.
const (
	settingsMenu       = "menu"
	settingsQuizLength = "quiz_length"
	settingsQuizMode   = "quiz_mode"
)

const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// intParam parses the i-th parameter as an int.
func (cd callbackData) intParam(i int) (int, bool) {
	n, err := strconv.Atoi(cd.param(i))
	if err != nil {
		return 0, false
	}
	return n, true
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

func buildCountryCallback(countryID string) string {
	return callbackData{Action: actionCountry, Params: []string{countryID}}.encode()
}

func buildBookmarkCallback(countryID string) string {
	return callbackData{Action: actionBookmark, Params: []string{countryID}}.encode()
}

// buildPageCallback builds callback data for a page of the country list.
// An empty region means the whole catalog.
func buildPageCallback(page int, region string) string {
	params := []string{strconv.Itoa(page)}
	if region != "" {
		params = append(params, region)
	}
	return callbackData{Action: actionPage, Params: params}.encode()
}

func buildRegionCallback(region string) string {
	return callbackData{Action: actionRegion, Params: []string{region}}.encode()
}

// buildQuizAnswerCallback builds callback data for answering the current question.
func buildQuizAnswerCallback(sessionID string, index int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizAnswer, sessionID, strconv.Itoa(index)},
	}.encode()
}

// buildQuizNavCallback builds callback data for next, previous and finish.
func buildQuizNavCallback(subAction, sessionID string) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{subAction, sessionID},
	}.encode()
}

func buildQuizRestartCallback(sessionID string) string {
	return callbackData{Action: actionQuiz, Params: []string{quizRestart, sessionID}}.encode()
}

func buildQuizCloseCallback(sessionID string) string {
	return callbackData{Action: actionQuiz, Params: []string{quizClose, sessionID}}.encode()
}

// buildQuizStartCallback builds callback data for starting a quiz in mode.
func buildQuizStartCallback(mode string) string {
	return callbackData{Action: actionQuiz, Params: []string{quizStart, mode}}.encode()
}

// buildSettingsCallback builds callback data for settings-related actions.
func buildSettingsCallback(subAction string, value ...string) string {
	params := []string{subAction}
	params = append(params, value...)
	return callbackData{
		Action: actionSettings,
		Params: params,
	}.encode()
}

func buildResetConfirmCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetConfirm}}.encode()
}

func buildResetCancelCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetCancel}}.encode()
}
