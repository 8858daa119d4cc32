package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version はビルド時に -ldflags で設定される
	Version = "dev"
	// Commit はビルド時に設定されるGitコミットハッシュ
	Commit = "none"
)

// Info はバージョン情報を保持する構造体
type Info struct {
	Version string
	Commit  string
}

// Get は現在のバージョン情報を返す。
// ldflagsで設定されていない場合は、go installで埋め込まれたモジュールバージョンを使う。
func Get() Info {
	info := Info{
		Version: Version,
		Commit:  Commit,
	}

	if info.Version == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	return info
}

// String はバージョンとコミットを1行で返す
func (i Info) String() string {
	return fmt.Sprintf("%s (%s)", i.Version, i.Commit)
}
