/*----------------------------------------------------------------
 *  Copyright (c) Fable Contributors
 *  Licensed under the Apache License, Version 2.0
 *  See LICENSE in the project root for license information.
 *----------------------------------------------------------------*/

package version

import (
	"fmt"
	"strconv"
	"strings"
)

// CurrentVersion is the version of the fable binary.
var CurrentVersion = &Version{0, 1, 0}

// BuildMetadata is overridden by the release build.
var BuildMetadata = ""

type Version struct {
	Major int
	Minor int
	Patch int
}

func ParseVersion(versionText string) (*Version, error) {
	splits := strings.Split(versionText, ".")
	if len(splits) != 3 {
		return nil, fmt.Errorf("incorrect version format, version should be in the form 1.5.7")
	}
	major, err := strconv.Atoi(splits[0])
	if err != nil {
		return nil, versionError("major", splits[0], err)
	}
	minor, err := strconv.Atoi(splits[1])
	if err != nil {
		return nil, versionError("minor", splits[1], err)
	}
	patch, err := strconv.Atoi(splits[2])
	if err != nil {
		return nil, versionError("patch", splits[2], err)
	}
	return &Version{major, minor, patch}, nil
}

func (v *Version) IsLesserThan(other *Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// FullVersion renders the version with build metadata when present.
func FullVersion() string {
	metadata := ""
	if BuildMetadata != "" {
		metadata = fmt.Sprintf(".%s", BuildMetadata)
	}
	return fmt.Sprintf("%s%s", CurrentVersion.String(), metadata)
}

func versionError(level, text string, err error) error {
	return fmt.Errorf("error parsing %s version %s to integer. %s", level, text, err.Error())
}
