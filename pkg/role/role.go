// Package role はゲートウェイ全体で共有するロール定義を提供する。
//
// バックエンドのuserサービスが解決するロール名と1対1で対応する
// 閉じた列挙型であり、未知のロール名は RoleUnknown として明示的に扱う。
// 暗黙のデフォルトへのフォールバックは行わない。
package role

// Role はユーザーのロールを表す閉じた列挙型。
type Role string

const (
	// RolePresidente は組織の代表者。ユーザー管理を含む全ての操作が許可される。
	RolePresidente Role = "PRESIDENTE"
	// RoleVocal は在庫管理の担当者。
	RoleVocal Role = "VOCAL"
	// RoleCoordinador はイベント運営の担当者。
	RoleCoordinador Role = "COORDINADOR"
	// RoleVoluntario は一般のボランティア。自身のイベント参加のみ操作できる。
	RoleVoluntario Role = "VOLUNTARIO"
	// RoleUnknown は既知のロール名に一致しないことを表す。
	RoleUnknown Role = "ROLE_UNKNOWN"
)

// Parse はロール名文字列をRoleに変換する。
// 既知のロール名に一致しない場合は RoleUnknown とfalseを返す。
func Parse(name string) (Role, bool) {
	switch Role(name) {
	case RolePresidente, RoleVocal, RoleCoordinador, RoleVoluntario:
		return Role(name), true
	default:
		return RoleUnknown, false
	}
}

// Valid は既知のロールであればtrueを返す。
func (r Role) Valid() bool {
	switch r {
	case RolePresidente, RoleVocal, RoleCoordinador, RoleVoluntario:
		return true
	default:
		return false
	}
}

// String はロール名文字列を返す。
func (r Role) String() string {
	return string(r)
}
