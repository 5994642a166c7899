package testutil

// SampleReadersConfig is a small CCID supported readers config with every
// section kind, duplicates across sections and a name containing colons.
const SampleReadersConfig = `# List of readers supported by the CCID driver

# section: supported
# ACS
072F:90CC:ACS ACR 38U-CCID
072F:2200:ACS ACR122U PICC Interface
# Gemalto
08E6:3437:Gemalto PC Twin Reader
08E6:3437:Gemalto PC Twin Reader

# section: shouldwork
0B97:7762:O2 Micro Oz776
0DC3:1004:Athena Smartcard Solutions: ASEDrive IIIe KB

# section: unsupported
1234:5678:Broken Reader
0B97:7762:O2 Micro Oz776

# section: disabled
072F:90CC:ACS ACR 38U-CCID
`

// SampleReadersList is the list generated from SampleReadersConfig
const SampleReadersList = `ACS ACR 38U-CCID
ACS ACR122U PICC Interface
Athena Smartcard Solutions: ASEDrive IIIe KB
Gemalto PC Twin Reader
O2 Micro Oz776`
