package http

// Client-facing messages. They reproduce the service's established Korean
// wording, so they are not translated or rephrased here.
const (
	msgSignupMissingFields = "모든 필드를 입력해주세요."
	msgUsernameTaken       = "이미 존재하는 아이디입니다."
	msgEmailTaken          = "이미 존재하는 이메일입니다."
	msgSignupOK            = "회원가입이 완료되었습니다."
	msgSignupError         = "회원가입 중 오류가 발생했습니다."

	msgLoginMissingFields = "아이디와 비밀번호를 입력해주세요."
	msgBadCredentials     = "아이디 또는 비밀번호가 잘못되었습니다."
	msgLoginOK            = "로그인 성공"
	msgLoginError         = "로그인 중 오류가 발생했습니다."

	msgLogoutOK = "로그아웃 성공"

	msgUserNotFound   = "사용자를 찾을 수 없습니다."
	msgUserFetchError = "사용자 정보를 가져오는데 실패했습니다."

	msgUnauthorized = "Unauthorized"

	msgGenerateError        = "핑계 생성에 실패했습니다. 다시 시도해주세요."
	msgBookmarkedFetchError = "저장된 핑계를 가져오는데 실패했습니다."
	msgRecentFetchError     = "최근 핑계를 가져오는데 실패했습니다."
	msgExcuseNotFound       = "핑계를 찾을 수 없습니다."
	msgBookmarkUpdateError  = "북마크 업데이트에 실패했습니다."
	msgCleared              = "핑계 기록이 초기화되었습니다."
	msgClearError           = "핑계 기록 초기화에 실패했습니다."

	msgUsageFetchError   = "사용 통계를 가져오는데 실패했습니다."
	msgHistoryFetchError = "사용 기록을 가져오는데 실패했습니다."
)
