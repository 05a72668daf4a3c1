package syslog_test

import (
	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/allanhung/stdout-syslog/pkg/syslog"
)

var _ = Describe("ParsePriority", func() {
	It("parses facility.level", func() {
		p, err := syslog.ParsePriority("local0.err")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(syslog.Local0 | syslog.Error))
		Expect(p.Level()).To(Equal(3))
		Expect(p.Facility()).To(Equal(128))
	})

	It("parses canonical names", func() {
		p, err := syslog.ParsePriority("LOG_DAEMON.LOG_WARNING")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(syslog.Daemon | syslog.Warning))
	})

	It("defaults to the user facility", func() {
		p, err := syslog.ParsePriority("notice")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(syslog.User | syslog.Notice))
	})

	It("rejects unknown names", func() {
		_, err := syslog.ParsePriority("local0.loud")
		Expect(errors.Cause(err)).To(Equal(syslog.ErrUnknownLevelName))

		_, err = syslog.ParsePriority("kitchen.err")
		Expect(errors.Cause(err)).To(Equal(syslog.ErrUnknownFacilityName))
	})

	It("prints facility.level", func() {
		Expect((syslog.Local0 | syslog.Error).String()).To(Equal("local0.err"))
		Expect(syslog.Debug.String()).To(Equal("kern.debug"))
	})
})
