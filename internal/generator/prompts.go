package generator

import (
	"strings"

	"github.com/yjkwon-dev/pinggye/models"
)

const systemPrompt = "당신은 한국 학생들을 위한 상황별 수업 핑계 생성 전문가입니다. 자연스럽고 믿을 만한 핑계를 한국어로 생성해주세요."

var categoryPrompts = map[models.Category]string{
	models.CategoryHealth:    "몸이 아픈 상황 (감기, 몸살, 복통, 두통 등)",
	models.CategoryFamily:    "가족 관련 문제 (가족 병원 동행, 집안 경조사, 가족 응급상황 등)",
	models.CategoryTransport: "교통 관련 문제 (지하철 지연, 교통사고, 차량 고장 등)",
	models.CategoryPersonal:  "개인적인 사정 (중요한 약속, 개인 업무, 갑작스런 일정 등)",
}

var toneInstructions = map[models.Tone]string{
	models.ToneLight:    "가벼우면서도 믿을 만한 핑계로, 너무 심각하지 않게",
	models.ToneModerate: "적당히 그럴듯하고 자연스러운 사유로",
	models.ToneSerious:  "진지하고 중요한 사안처럼 들리도록",
}

// buildPrompt assembles the user prompt for a generation request. The
// category must already be concrete.
func buildPrompt(req Request) string {
	subjectLine := ""
	if req.Subject != "" {
		subjectLine = "과목/수업: " + req.Subject
	}
	timeframeLine := ""
	if req.Timeframe != "" {
		timeframeLine = "시간: " + req.Timeframe
	}
	userInputLine := ""
	if req.UserInput != "" {
		userInputLine = "추가 상황 설명: " + req.UserInput
	}

	lines := []string{
		"한국 학생이 수업을 빠질 때 사용할 수 있는 자연스럽고 믿을 만한 핑계를 생성해주세요.",
		"",
		"상황 유형: " + categoryPrompts[req.Category],
		"톤: " + toneInstructions[req.Tone],
		subjectLine,
		timeframeLine,
		userInputLine,
		"",
		"요구사항:",
		"1. 교수님이나 선생님께 보내는 정중한 메시지 형태로 작성",
		"2. 한국어로 자연스럽게 작성",
		"3. 너무 과장되지 않고 현실적으로 들리도록",
		`4. "안녕하세요 교수님" 또는 "안녕하세요 선생님"으로 시작`,
		"5. 구체적인 상황 설명과 정중한 양해 구하기 포함",
		"6. 100자 이상 200자 이하로 작성",
		"",
		"JSON 형태로 응답해주세요:",
		"{",
		`  "excuse": "생성된 핑계 문장",`,
		`  "category": "` + string(req.Category) + `",`,
		`  "tone": "` + string(req.Tone) + `"`,
		"}",
	}

	return strings.Join(lines, "\n")
}
