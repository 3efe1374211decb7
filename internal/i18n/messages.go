package i18n

// Message keys used across the CLI. Keep in sync with the korean table.
const (
	MsgEnvironment     = "Environment"
	MsgJumpHost        = "Jump host"
	MsgTargetUser      = "Target user"
	MsgOneShotCommand  = "One-shot command"
	MsgSSHConfig       = "SSH config"
	MsgConfigHint      = "Add this to ~/.ssh/config, then connect with: ssh %s"
	MsgPlaceholderHint = "Replace %s with your SSH user on the jump host."
	MsgNoEnvironments  = "No environments configured"
	MsgAddedEnv        = "Added environment '%s' to %s"
	MsgNoConflicts     = "No alias conflicts with %s"
	MsgConflict        = "Host %s already exists in %s with different settings (%s)"
	MsgColID           = "ID"
	MsgColName         = "NAME"
	MsgColJumpHost     = "JUMP HOST"
	MsgColAlias        = "ALIAS"
	MsgColPort         = "PORT"
	MsgCancelled       = "Cancelled."

	// env add form
	MsgFormID          = "Environment ID"
	MsgFormIDRequired  = "ID is required"
	MsgFormName        = "Name"
	MsgFormNameHelp    = "Used for the ssh alias; defaults to the ID"
	MsgFormPort        = "SSH port"
	MsgFormPortHelp    = "Port of the environment's sshd, reached through the jump host"
	MsgFormPortInvalid = "enter a port between 1 and 65535"
	MsgFormUser        = "Container user"
	MsgFormWorker      = "Worker server name"
	MsgFormWorkerHelp  = "Leave empty when the environment runs on the jump host itself"
	MsgFormWorkerURL   = "Worker base URL"
)

var korean = map[string]string{
	MsgEnvironment:     "환경",
	MsgJumpHost:        "점프 호스트",
	MsgTargetUser:      "대상 사용자",
	MsgOneShotCommand:  "한 줄 접속 명령",
	MsgSSHConfig:       "SSH 설정",
	MsgConfigHint:      "~/.ssh/config 에 추가한 뒤 다음으로 접속하세요: ssh %s",
	MsgPlaceholderHint: "%s 를 점프 호스트의 SSH 사용자로 바꾸세요.",
	MsgNoEnvironments:  "등록된 환경이 없습니다",
	MsgAddedEnv:        "환경 '%s' 을(를) %s 에 추가했습니다",
	MsgNoConflicts:     "%s 와 겹치는 별칭이 없습니다",
	MsgConflict:        "Host %s 가 %s 에 다른 설정으로 이미 있습니다 (%s)",
	MsgColID:           "ID",
	MsgColName:         "이름",
	MsgColJumpHost:     "점프 호스트",
	MsgColAlias:        "별칭",
	MsgColPort:         "포트",
	MsgCancelled:       "취소되었습니다.",

	MsgFormID:          "환경 ID",
	MsgFormIDRequired:  "ID 는 필수입니다",
	MsgFormName:        "이름",
	MsgFormNameHelp:    "ssh 별칭에 쓰입니다. 비우면 ID 를 씁니다",
	MsgFormPort:        "SSH 포트",
	MsgFormPortHelp:    "점프 호스트를 거쳐 접속하는 환경 sshd 의 포트",
	MsgFormPortInvalid: "1 에서 65535 사이의 포트를 입력하세요",
	MsgFormUser:        "컨테이너 사용자",
	MsgFormWorker:      "워커 서버 이름",
	MsgFormWorkerHelp:  "환경이 점프 호스트에서 직접 실행되면 비워 두세요",
	MsgFormWorkerURL:   "워커 기본 URL",
}
