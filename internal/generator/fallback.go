package generator

import "github.com/yjkwon-dev/pinggye/models"

// Static excuses served when no API credential is configured or the remote
// call fails. The texts are fixed so offline behavior stays deterministic.
var fallbackExcuses = map[models.Category]string{
	models.CategoryHealth:    "안녕하세요 교수님, 어제 저녁부터 갑자기 몸살기운이 있어서 컨디션이 좋지 않습니다. 오늘 수업 참석이 어려워 결석 처리 부탁드리겠습니다.",
	models.CategoryFamily:    "안녕하세요 교수님, 갑작스럽게 가족 일로 외출해야 하는 상황이 생겨서 오늘 수업에 참석하기 어렵습니다. 결석 처리 부탁드리겠습니다.",
	models.CategoryTransport: "안녕하세요 교수님, 지하철 운행 지연으로 인해 수업 시간에 늦을 것 같습니다. 결석 처리 부탁드리겠습니다.",
	models.CategoryPersonal:  "안녕하세요 교수님, 개인적으로 급하게 처리해야 할 일이 생겨서 오늘 수업 참석이 어렵습니다. 결석 처리 부탁드리겠습니다.",
}

// fallbackFor returns the static excuse for the category, defaulting to the
// health text for anything unknown.
func fallbackFor(category models.Category) string {
	if excuse, ok := fallbackExcuses[category]; ok {
		return excuse
	}
	return fallbackExcuses[models.CategoryHealth]
}
