package config_test

import (
	"os"

	"github.com/onsi/gomega/gbytes"
	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/allanhung/stdout-syslog/pkg/config"
	"github.com/allanhung/stdout-syslog/pkg/syslog"
)

var _ = Describe("Config", func() {
	BeforeEach(func() {
		os.Clearenv()
	})

	It("has defaults", func() {
		cfg, err := config.Get()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Ident).To(BeEmpty())
		Expect(cfg.Facility).To(Equal("LOG_USER"))
		Expect(cfg.Level).To(Equal("LOG_INFO"))
		Expect(cfg.Upto).To(Equal("LOG_INFO"))
		Expect(cfg.Format).To(Equal(config.FormatText))
		Expect(cfg.MessageKey).To(Equal("log"))
		Expect(cfg.Strict).To(BeFalse())
		Expect(cfg.Validate()).To(Succeed())
	})

	It("reads the environment", func() {
		os.Setenv("SYSLOG_IDENT", "myapp")
		os.Setenv("SYSLOG_FACILITY", "local0")
		os.Setenv("SYSLOG_UPTO", "debug")
		os.Setenv("SYSLOG_STRICT", "true")
		os.Setenv("SYSLOG_FORMAT", "rfc5424")

		cfg, err := config.Get()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Ident).To(Equal("myapp"))
		Expect(cfg.Facility).To(Equal("local0"))
		Expect(cfg.Upto).To(Equal("debug"))
		Expect(cfg.Strict).To(BeTrue())
		Expect(cfg.Formatter()).To(Equal(syslog.RFC5424Formatter{}))
	})

	It("fails on malformed variables", func() {
		os.Setenv("SYSLOG_STRICT", "maybe")
		_, err := config.Get()
		Expect(err).To(HaveOccurred())
	})

	It("rejects unknown names and formats", func() {
		cfg := config.Default()
		cfg.Facility = "kitchen"
		Expect(errors.Cause(cfg.Validate())).To(Equal(syslog.ErrUnknownFacilityName))

		cfg = config.Default()
		cfg.Upto = "loud"
		Expect(errors.Cause(cfg.Validate())).To(Equal(syslog.ErrUnknownLevelName))

		cfg = config.Default()
		cfg.Format = "xml"
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("unknown format")))
	})

	It("builds an opened logger", func() {
		cfg := config.Default()
		cfg.Ident = "myapp"
		cfg.Facility = "LOG_LOCAL0"
		cfg.Upto = "LOG_WARNING"

		out := gbytes.NewBuffer()
		logger, err := cfg.NewLogger(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(logger.Opened()).To(BeTrue())
		Expect(logger.CurrentMask()).To(Equal(syslog.MaskUpTo(4)))

		Expect(logger.Notice("dropped")).To(Succeed())
		Expect(logger.Err("disk full")).To(Succeed())
		Expect(string(out.Contents())).To(Equal("[syslog][i:myapp][f:local0][l:err] disk full\n"))
	})

	It("prints as JSON", func() {
		Expect(config.Default().String()).To(ContainSubstring(`"Facility":"LOG_USER"`))
	})
})
