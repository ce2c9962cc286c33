package filesystem

import (
	"time"

	"golang.org/x/sys/unix"

	"filemgmt/internal/domain"
)

//nolint:unconvert // field widths differ between linux architectures
func fromStat(st *unix.Stat_t) domain.Metadata {
	return domain.Metadata{
		Mode:       uint32(st.Mode),
		Inode:      uint64(st.Ino),
		Device:     uint64(st.Dev),
		RawDevice:  uint64(st.Rdev),
		Size:       int64(st.Size),
		AccessTime: time.Unix(st.Atim.Unix()),
		ChangeTime: time.Unix(st.Ctim.Unix()),
		ModifyTime: time.Unix(st.Mtim.Unix()),
		Links:      uint64(st.Nlink),
		UID:        st.Uid,
		GID:        st.Gid,
	}
}
