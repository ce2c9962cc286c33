package filesystem

import (
	"time"

	"golang.org/x/sys/unix"

	"filemgmt/internal/domain"
)

func fromStat(st *unix.Stat_t) domain.Metadata {
	return domain.Metadata{
		Mode:       uint32(st.Mode),
		Inode:      st.Ino,
		Device:     uint64(uint32(st.Dev)),
		RawDevice:  uint64(uint32(st.Rdev)),
		Size:       st.Size,
		AccessTime: time.Unix(st.Atimespec.Unix()),
		ChangeTime: time.Unix(st.Ctimespec.Unix()),
		ModifyTime: time.Unix(st.Mtimespec.Unix()),
		Links:      uint64(st.Nlink),
		UID:        st.Uid,
		GID:        st.Gid,
	}
}
